package mq

type inspectRequest struct {
	UUID     string `json:"uuid"`
	UserID   int    `json:"user_id"`
	Template string `json:"template"`
	Dataset  string `json:"dataset"`
}

type inspectResponse struct {
	UUID         string   `json:"uuid"`
	UserID       int      `json:"user_id"`
	Placeholders []string `json:"placeholders"`
	Columns      []string `json:"columns"`
	RowCount     int      `json:"row_count"`
	Message      string   `json:"message,omitempty"`
}

type generateRequest struct {
	UUID     string            `json:"uuid"`
	UserID   int               `json:"user_id"`
	Template string            `json:"template"`
	Dataset  string            `json:"dataset"`
	Mapping  map[string]string `json:"mapping"`
	Rows     string            `json:"rows"`
}

type generateResponse struct {
	UUID      string   `json:"uuid"`
	UserID    int      `json:"user_id"`
	Documents []string `json:"documents"`
}

type emailRequest struct {
	UUID        string            `json:"uuid"`
	UserID      int               `json:"user_id"`
	Template    string            `json:"template"`
	Dataset     string            `json:"dataset"`
	Mapping     map[string]string `json:"mapping"`
	Rows        string            `json:"rows"`
	EmailColumn string            `json:"email_column"`
	Subject     string            `json:"subject"`
	Message     string            `json:"message"`
	ServiceID   string            `json:"service_id"`
	TemplateID  string            `json:"template_id"`
	PublicKey   string            `json:"public_key"`
}

type emailResponse struct {
	UUID    string `json:"uuid"`
	UserID  int    `json:"user_id"`
	Success int    `json:"success"`
	Failed  int    `json:"failed"`
	Summary string `json:"summary"`
}
