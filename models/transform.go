package models

// TransformRequest is the JSON body accepted by the encrypt and decrypt endpoints
type TransformRequest struct {
	Key  *string `json:"key"`
	Data *string `json:"data"`
}

// KeyText returns the key or "" when it was absent
func (r TransformRequest) KeyText() string {
	if r.Key == nil {
		return ""
	}
	return *r.Key
}

// DataText returns the data or "" when it was absent
func (r TransformRequest) DataText() string {
	if r.Data == nil {
		return ""
	}
	return *r.Data
}

// TransformResult is the outcome of a successful cipher operation
type TransformResult struct {
	Operation OperationKind
	Data      string
}

// TransformResponse is the JSON body returned by the encrypt and decrypt endpoints
type TransformResponse struct {
	Data string `json:"data"`
}

// AuditRecordResponse is the wire form of an AuditRecord
type AuditRecordResponse struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	IP        string `json:"ip"`
	Data      string `json:"data"`
}

// AuditPageResponse is the JSON body returned by the logs endpoint
type AuditPageResponse struct {
	Logs  []AuditRecordResponse `json:"logs"`
	Total int                   `json:"total"`
}

// NewAuditPageResponse converts a page into its wire form
func NewAuditPageResponse(page *AuditPage) AuditPageResponse {
	logs := make([]AuditRecordResponse, 0, len(page.Records))
	for _, rec := range page.Records {
		logs = append(logs, AuditRecordResponse{
			ID:        rec.ID,
			Timestamp: rec.Timestamp,
			IP:        rec.ClientAddress,
			Data:      string(rec.Operation),
		})
	}
	return AuditPageResponse{Logs: logs, Total: page.Total}
}

// ErrorResponse is the JSON body returned for any failed request
type ErrorResponse struct {
	Detail string `json:"detail"`
}
