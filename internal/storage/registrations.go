package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"event-portal/internal/domain"
)

// RegistrationsKey is the durable key holding the registration list.
const RegistrationsKey = "rrimt_regs"

// RegistrationStore owns the append-only registration list. The whole list
// is stored as one JSON array under RegistrationsKey.
type RegistrationStore struct {
	kv    KV
	key   string
	audit *AuditLog
}

func NewRegistrationStore(kv KV) *RegistrationStore {
	return &RegistrationStore{kv: kv, key: RegistrationsKey}
}

// WithAuditLog records every successful Append in audit.
func (s *RegistrationStore) WithAuditLog(audit *AuditLog) *RegistrationStore {
	s.audit = audit
	return s
}

// Append reads the list, appends reg and writes the list back in one Update.
func (s *RegistrationStore) Append(ctx context.Context, reg domain.Registration) error {
	err := s.kv.Update(ctx, s.key, func(old []byte) ([]byte, error) {
		list, err := decodeList(old)
		if err != nil {
			return nil, err
		}
		list = append(list, reg)
		return json.Marshal(list)
	})
	if err != nil {
		return fmt.Errorf("append registration: %w", err)
	}

	if s.audit != nil {
		s.audit.Record(reg)
	}
	return nil
}

// List returns every registration in insertion order. A missing key is an
// empty list.
func (s *RegistrationStore) List(ctx context.Context) ([]domain.Registration, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, ErrKeyNotFound) {
		return []domain.Registration{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	list, err := decodeList(raw)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return list, nil
}

func decodeList(raw []byte) ([]domain.Registration, error) {
	list := []domain.Registration{}
	if len(raw) == 0 {
		return list, nil
	}
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode stored registrations: %w", err)
	}
	if list == nil {
		list = []domain.Registration{}
	}
	return list, nil
}
