package handlers

import (
	"time"

	"go.uber.org/zap"

	"quotecalc/services"
)

// Deps are the collaborators shared by the quotation handlers.
type Deps struct {
	Engine        *services.Engine
	Exporter      *services.Exporter
	Logger        *zap.Logger
	CompanyName   string
	DefaultFormat services.Format
	Now           func() time.Time
}

func (d *Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

func (d *Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}
