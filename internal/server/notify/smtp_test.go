package notify

import (
	"bufio"
	"context"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSMTP is a minimal SMTP server: no TLS, no AUTH.
type fakeSMTP struct {
	ln       net.Listener
	rejectTo string
	silent   bool

	mu   sync.Mutex
	from string
	rcpt []string
	data string
}

func startFakeSMTP(t *testing.T) *fakeSMTP {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	f := &fakeSMTP{ln: ln}
	t.Cleanup(func() { _ = ln.Close() })
	go f.serve()
	return f
}

func (f *fakeSMTP) port() int {
	return f.ln.Addr().(*net.TCPAddr).Port
}

func (f *fakeSMTP) serve() {
	for {
		conn, err := f.ln.Accept()
		if err != nil {
			return
		}
		go f.handle(conn)
	}
}

func (f *fakeSMTP) handle(conn net.Conn) {
	defer conn.Close()
	if f.silent {
		time.Sleep(2 * time.Second)
		return
	}

	r := bufio.NewReader(conn)
	w := func(s string) { _, _ = conn.Write([]byte(s + "\r\n")) }

	w("220 localhost ESMTP fake")
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		cmd := strings.ToUpper(line)

		switch {
		case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
			w("250-localhost")
			w("250 8BITMIME")
		case strings.HasPrefix(cmd, "MAIL FROM:"):
			f.mu.Lock()
			f.from = line[len("MAIL FROM:"):]
			f.mu.Unlock()
			w("250 OK")
		case strings.HasPrefix(cmd, "RCPT TO:"):
			addr := line[len("RCPT TO:"):]
			if f.rejectTo != "" && strings.Contains(addr, f.rejectTo) {
				w("550 no such user")
				continue
			}
			f.mu.Lock()
			f.rcpt = append(f.rcpt, addr)
			f.mu.Unlock()
			w("250 OK")
		case cmd == "DATA":
			w("354 go ahead")
			var sb strings.Builder
			for {
				l, err := r.ReadString('\n')
				if err != nil {
					return
				}
				if l == ".\r\n" {
					break
				}
				sb.WriteString(l)
			}
			f.mu.Lock()
			f.data = sb.String()
			f.mu.Unlock()
			w("250 queued")
		case cmd == "QUIT":
			w("221 bye")
			return
		default:
			w("502 not implemented")
		}
	}
}

func TestSMTPSender_Delivers(t *testing.T) {
	srv := startFakeSMTP(t)
	s := NewSMTPSender(SMTPConfig{Host: "127.0.0.1", Port: srv.port(), From: `"Kongu Official" <noreply@kongu.ac.in>`})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	subject, body := OTPMessage("482913", 10*time.Minute)
	require.NoError(t, s.Send(ctx, "a@kongu.edu", subject, body))

	srv.mu.Lock()
	defer srv.mu.Unlock()
	assert.Contains(t, srv.from, "<noreply@kongu.ac.in>")
	require.Len(t, srv.rcpt, 1)
	assert.Contains(t, srv.rcpt[0], "<a@kongu.edu>")
	assert.Contains(t, srv.data, "Subject: "+OTPSubject)
	assert.Contains(t, srv.data, "To: a@kongu.edu")
	assert.Contains(t, srv.data, "482913")
	assert.Contains(t, srv.data, "expire in 10 minutes")
}

func TestSMTPSender_RecipientRejected(t *testing.T) {
	srv := startFakeSMTP(t)
	srv.rejectTo = "ghost@kongu.edu"
	s := NewSMTPSender(SMTPConfig{Host: "127.0.0.1", Port: srv.port(), From: "noreply@kongu.ac.in"})

	err := s.Send(context.Background(), "ghost@kongu.edu", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp rcpt")
}

func TestSMTPSender_DialFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	s := NewSMTPSender(SMTPConfig{Host: "127.0.0.1", Port: port, From: "noreply@kongu.ac.in"})
	err = s.Send(context.Background(), "a@kongu.edu", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp dial")
}

func TestSMTPSender_SilentServerHitsDeadline(t *testing.T) {
	srv := startFakeSMTP(t)
	srv.silent = true
	s := NewSMTPSender(SMTPConfig{Host: "127.0.0.1", Port: srv.port(), From: "noreply@kongu.ac.in"})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := s.Send(ctx, "a@kongu.edu", "s", "b")
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestEnvelopeAddress(t *testing.T) {
	assert.Equal(t, "noreply@kongu.ac.in", envelopeAddress(`"Kongu Official" <noreply@kongu.ac.in>`))
	assert.Equal(t, "noreply@kongu.ac.in", envelopeAddress(" noreply@kongu.ac.in "))
	assert.Equal(t, "not an address", envelopeAddress("not an address"))
}

func TestBuildMessage_Headers(t *testing.T) {
	msg := buildMessage("f@x", "t@y", "subj", "body")
	parts := strings.SplitN(msg, "\r\n\r\n", 2)
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0], "Content-Type: text/plain; charset=utf-8")
	assert.Equal(t, "body", parts[1])
}
