package models

import "fmt"

// OperationKind identifies which direction of the cipher was applied
type OperationKind string

const (
	OperationEncrypt OperationKind = "encrypt"
	OperationDecrypt OperationKind = "decrypt"
)

// Valid reports whether k is a known operation
func (k OperationKind) Valid() bool {
	return k == OperationEncrypt || k == OperationDecrypt
}

// ParseOperationKind converts a stored string back into an OperationKind
func ParseOperationKind(s string) (OperationKind, error) {
	k := OperationKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown operation kind %q", s)
	}
	return k, nil
}

// AuditRecord represents one completed encrypt/decrypt call
type AuditRecord struct {
	ID            string
	Timestamp     int64 // seconds since epoch
	ClientAddress string
	Operation     OperationKind
}

// AuditPage is one window of audit records plus the overall count
type AuditPage struct {
	Records []AuditRecord
	Total   int
}
