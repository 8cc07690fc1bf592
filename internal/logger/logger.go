package logger

import "go.uber.org/zap"

// New builds a sugared zap logger for the given environment. Production gets
// JSON output at info level; everything else gets the development console
// encoder with debug enabled.
func New(environment string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if environment == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
