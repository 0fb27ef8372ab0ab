package models

// Project is an identity project (tenant).
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Instance is a compute server as seen by the report.
type Instance struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProjectID string `json:"tenant_id"`
	Host      string `json:"host"`
}
