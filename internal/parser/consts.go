package parser

const (
	typeRegexp = `\.(docx|xlsx|xls)$`
)

// File types known to the service.
const (
	TypeDocx = "docx"
	TypeXlsx = "xlsx"
	TypeXls  = "xls"
)
