package middleware

import (
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{
		l: l,
	}
}
