package mailer

import (
	"context"
	"time"

	"github.com/apnacafe/backend/internal/metrics"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type Message struct {
	To       string
	Subject  string
	Body     string
	Template string
}

// Sender delivers one message. The SMTP implementation is swapped for a fake
// in tests.
type Sender interface {
	Send(m Message) error
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, user, pass, from string) *SMTPSender {
	return &SMTPSender{dialer: gomail.NewDialer(host, port, user, pass), from: from}
}

func (s *SMTPSender) Send(m Message) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.Body)
	return s.dialer.DialAndSend(msg)
}

// Outbox queues transactional mail and delivers it off the request path.
// Delivery is best-effort: a message that exhausts its retry budget is
// logged and dropped, and never fails the action that triggered it.
type Outbox struct {
	sender  Sender
	log     *zap.Logger
	inbox   chan Message
	closeCh chan struct{}
	retries int
	backoff time.Duration
}

func NewOutbox(s Sender, buf int, log *zap.Logger) *Outbox {
	return &Outbox{
		sender:  s,
		log:     log,
		inbox:   make(chan Message, buf),
		closeCh: make(chan struct{}),
		retries: 2,
		backoff: 200 * time.Millisecond,
	}
}

func (o *Outbox) Start(ctx context.Context) {
	go func() {
		defer close(o.closeCh)
		for {
			select {
			case <-ctx.Done():
				// deliver what is already queued, then stop
				for {
					select {
					case m, ok := <-o.inbox:
						if !ok {
							return
						}
						o.deliver(m)
					default:
						return
					}
				}
			case m, ok := <-o.inbox:
				if !ok {
					return
				}
				o.deliver(m)
			}
		}
	}()
}

// Enqueue never blocks a request handler: with a full queue the message is
// dropped and counted.
func (o *Outbox) Enqueue(m Message) {
	select {
	case o.inbox <- m:
	default:
		o.log.Warn("mail outbox full, dropping message",
			zap.String("template", m.Template), zap.String("to", m.To))
		metrics.EmailsTotal.WithLabelValues(m.Template, "dropped").Inc()
	}
}

func (o *Outbox) deliver(m Message) {
	var err error
	for attempt := 0; attempt <= o.retries; attempt++ {
		if attempt > 0 {
			time.Sleep(o.backoff)
		}
		if err = o.sender.Send(m); err == nil {
			o.log.Info("email sent",
				zap.String("template", m.Template), zap.String("to", m.To))
			metrics.EmailsTotal.WithLabelValues(m.Template, "sent").Inc()
			return
		}
	}
	o.log.Error("email send failed",
		zap.String("template", m.Template), zap.String("to", m.To), zap.Error(err))
	metrics.EmailsTotal.WithLabelValues(m.Template, "failed").Inc()
}

// Close stops accepting mail; the worker drains the queue and exits.
func (o *Outbox) Close() { close(o.inbox) }

func (o *Outbox) WaitClosed() { <-o.closeCh }
