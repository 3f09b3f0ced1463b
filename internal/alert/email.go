// Package alert emails expiry digests to users who opted into email
// notifications. Entries accumulate in the key-value store and are sent
// as a daily summary.
package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/rogerio-castellano/freshtrack/internal/kvstore"
	"github.com/rogerio-castellano/freshtrack/internal/settings"
	"github.com/rogerio-castellano/freshtrack/internal/stats"
)

// SMTPConfig carries the outgoing mail server settings.
type SMTPConfig struct {
	Server       string
	Port         string
	User         string
	Password     string
	From         string
	AuthDisabled bool
}

type Mailer struct {
	cfg   SMTPConfig
	store kvstore.Store
}

func NewMailer(cfg SMTPConfig, store kvstore.Store) *Mailer {
	return &Mailer{cfg: cfg, store: store}
}

type digestEntry struct {
	Expired    int       `json:"expired"`
	NearExpiry int       `json:"near_expiry"`
	To         string    `json:"to"`
	Time       time.Time `json:"time"`
}

// RecordDigestEntry appends a digest entry after a mutation left expired
// or near-expiry stock, provided the user opted into email notifications.
// Best effort: failures are logged only.
func (m *Mailer) RecordDigestEntry(ctx context.Context, st stats.Stats, s settings.Settings) {
	if m == nil || m.store == nil {
		return
	}
	if !s.EmailNotifications || s.EmailAddress == "" {
		return
	}
	if st.Expired == 0 && st.NearExpiry == 0 {
		return
	}

	entry := digestEntry{
		Expired:    st.Expired,
		NearExpiry: st.NearExpiry,
		To:         s.EmailAddress,
		Time:       time.Now().UTC(),
	}
	data, _ := json.Marshal(entry)
	if err := m.store.Append(ctx, kvstore.AlertDigestKey, string(data)); err != nil {
		log.Printf("could not record alert digest entry: %v", err)
	}
}

// StartDailyDigest sends the accumulated digest once a day, shortly
// before midnight.
func (m *Mailer) StartDailyDigest(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		m.SendDailyDigest(context.Background())
	}
}

// SendDailyDigest reads and clears the digest log and mails a summary to
// the most recently configured address.
func (m *Mailer) SendDailyDigest(ctx context.Context) {
	entries, err := m.store.Range(ctx, kvstore.AlertDigestKey)
	if err != nil || len(entries) == 0 {
		return
	}
	_ = m.store.Delete(ctx, kvstore.AlertDigestKey)

	var parsed []digestEntry
	to := ""
	maxExpired, maxNearExpiry := 0, 0
	for _, item := range entries {
		var entry digestEntry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			parsed = append(parsed, entry)
			to = entry.To
			if entry.Expired > maxExpired {
				maxExpired = entry.Expired
			}
			if entry.NearExpiry > maxNearExpiry {
				maxNearExpiry = entry.NearExpiry
			}
		}
	}
	if len(parsed) == 0 || to == "" {
		return
	}

	var sb strings.Builder
	sb.WriteString("<h2>Expiry digest</h2>")
	sb.WriteString(fmt.Sprintf("<p>Peak today: <strong>%d</strong> expired, <strong>%d</strong> near expiry.</p>", maxExpired, maxNearExpiry))
	sb.WriteString("<h3>Checks</h3><ul>")
	for _, entry := range parsed {
		sb.WriteString(fmt.Sprintf("<li>%d expired / %d near expiry at %s</li>",
			entry.Expired, entry.NearExpiry, entry.Time.Format(time.RFC822)))
	}
	sb.WriteString("</ul>")

	subject := "FreshTrack daily expiry digest"
	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		sb.String(),
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", m.cfg.Server, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Server)
	if m.cfg.AuthDisabled {
		auth = nil
	}

	go func() {
		if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
			log.Printf("Failed to send expiry digest: %v", err)
		}
	}()
}
