package placeholder

const (
	placeholderRegexp = `\{\s*([A-Za-z0-9_.]+)\s*\}`
)
