package docx

const (
	placeholderRegexp = `\{\s*([A-Za-z0-9_.]+)\s*\}`

	documentPart = "word/document.xml"
)
