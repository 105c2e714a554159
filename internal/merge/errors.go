package merge

import (
	"errors"
)

var (
	errWrongTemplateType = errors.New("template must be a docx file")
	errWrongDatasetType  = errors.New("dataset must be an xlsx or xls file")
	errNoTransportConfig = errors.New("transport configuration is not complete")
)
