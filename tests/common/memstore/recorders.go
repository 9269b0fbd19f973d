//go:build unit

package memstore

import (
	"context"
	"sync"

	"order-ledger/internal/usecase/commands"
)

// Notifications records every dispatched notification.
type Notifications struct {
	mu   sync.Mutex
	sent []commands.Notification
	Err  error
}

func (n *Notifications) Notify(_ context.Context, msg commands.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.Err
}

func (n *Notifications) Sent() []commands.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]commands.Notification(nil), n.sent...)
}

// Mails records every status email handed to the mailer.
type Mails struct {
	mu   sync.Mutex
	sent []commands.OrderStatusEmail
	Err  error
}

func (m *Mails) SendOrderStatus(_ context.Context, msg commands.OrderStatusEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.Err
}

func (m *Mails) Sent() []commands.OrderStatusEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]commands.OrderStatusEmail(nil), m.sent...)
}

// Rewards records referral reward issuance calls.
type Rewards struct {
	mu     sync.Mutex
	issued []commands.RewardRequest
	Err    error
	Panic  bool
}

func (r *Rewards) IssueReferralReward(_ context.Context, req commands.RewardRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issued = append(r.issued, req)
	if r.Panic {
		panic("reward issuer exploded")
	}
	return r.Err
}

func (r *Rewards) Issued() []commands.RewardRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]commands.RewardRequest(nil), r.issued...)
}
