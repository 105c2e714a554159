package merge

const (
	defaultSubject = "Your generated document"
	defaultMessage = "Please find your document attached."

	noPlaceholdersMessage = "no placeholders detected"
	noRowsMessage         = "dataset is not tabular"
)
