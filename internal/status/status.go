// Package status interprets the plain text answers returned by the No-IP
// dynamic DNS update endpoint.
package status

import (
	"strings"
	"time"
	"unicode"
)

// Token is the machine readable word at the start of an update response
type Token string

// Known update response tokens
const (
	TokenGood     Token = "good"
	TokenNoChange Token = "nochg"
	TokenNoHost   Token = "nohost"
	TokenBadAuth  Token = "badauth"
	TokenBadAgent Token = "badagent"
	TokenDonator  Token = "!donator"
	TokenAbuse    Token = "abuse"
	TokenOutage   Token = "911"
	TokenUnknown  Token = "unknown"
)

// Severity of an interpreted response
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "info"
	}
}

// Transition describes what an outcome does to the contact sensor
type Transition int

const (
	// Keep leaves the sensor at its last known value
	Keep Transition = iota
	// Detected reports a healthy update
	Detected
	// NotDetected reports a failed update
	NotDetected
)

// OutageRetryAfter is the minimum wait No-IP asks for after a 911 response
const OutageRetryAfter = 30 * time.Minute

// Outcome is the classified result of one update response
type Outcome struct {
	Token      Token
	Severity   Severity
	Transition Transition
	// Halt is true when the client must not send further updates
	// without user intervention
	Halt bool
	// RetryAfter is non-zero when the halt may be lifted after a delay
	RetryAfter time.Duration
	// IP is the address echoed back by No-IP, if any
	IP      string
	Message string
}

// Contact applies the outcome's transition to the current sensor value
func (o Outcome) Contact(current bool) bool {
	switch o.Transition {
	case Detected:
		return true
	case NotDetected:
		return false
	default:
		return current
	}
}

type rule struct {
	severity   Severity
	transition Transition
	halt       bool
	retryAfter time.Duration
	message    string
}

var rules = map[Token]rule{
	TokenNoChange: {
		severity:   SeverityInfo,
		transition: Detected,
		message:    "IP address has not changed",
	},
	TokenGood: {
		severity: SeverityWarn,
		message:  "IP address has been updated",
	},
	TokenNoHost: {
		severity:   SeverityError,
		transition: NotDetected,
		halt:       true,
		message: "Hostname supplied does not exist under specified account, " +
			"client exit and require user to enter new login credentials before performing an additional request.",
	},
	TokenBadAuth: {
		severity:   SeverityError,
		transition: NotDetected,
		halt:       true,
		message:    "Invalid username password combination.",
	},
	TokenBadAgent: {
		severity:   SeverityError,
		transition: NotDetected,
		halt:       true,
		message:    "Client disabled. Client should exit and not perform any more updates without user intervention.",
	},
	TokenDonator: {
		severity:   SeverityError,
		transition: NotDetected,
		halt:       true,
		message: "An update request was sent, including a feature that is not available " +
			"to that particular user such as offline options.",
	},
	TokenAbuse: {
		severity:   SeverityError,
		transition: NotDetected,
		halt:       true,
		message: "Username is blocked due to abuse. Either for not following our update specifications " +
			"or disabled due to violation of the No-IP terms of service. Client should stop sending updates.",
	},
	TokenOutage: {
		severity:   SeverityError,
		transition: NotDetected,
		halt:       true,
		retryAfter: OutageRetryAfter,
		message:    "A fatal error on our side such as a database outage. Retry the update no sooner than 30 minutes.",
	},
}

// Known reports whether t is one of the documented No-IP tokens
func (t Token) Known() bool {
	_, ok := rules[t]
	return ok
}

// Fatal reports whether t halts further updates
func (t Token) Fatal() bool {
	return rules[t].halt
}

// Split isolates the status token and the optional trailing IP address
// from the first line of a raw response body
func Split(raw string) (string, string) {
	line := strings.TrimSpace(raw)

	if i := strings.IndexAny(line, "\r\n"); i != -1 {
		line = strings.TrimSpace(line[:i])
	}

	idx := strings.IndexFunc(line, unicode.IsSpace)

	if idx == -1 {
		return line, ""
	}

	return line[:idx], strings.TrimSpace(line[idx:])
}

// Interpret classifies a raw update response. It has no side effects:
// logging, sensor updates and halting are left to the caller.
func Interpret(raw string) Outcome {
	word, ip := Split(raw)

	token := Token(word)

	r, ok := rules[token]

	if !ok {
		return Outcome{
			Token:      TokenUnknown,
			Severity:   SeverityInfo,
			Transition: Keep,
			IP:         ip,
			Message:    "unrecognized response: " + strings.TrimSpace(raw),
		}
	}

	return Outcome{
		Token:      token,
		Severity:   r.severity,
		Transition: r.transition,
		Halt:       r.halt,
		RetryAfter: r.retryAfter,
		IP:         ip,
		Message:    r.message,
	}
}
