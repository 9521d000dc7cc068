// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package xtract

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sassoftware/pdf-xtract/logger"
)

type ParsingMode string

const (
	Strict     ParsingMode = "strict"
	BestEffort ParsingMode = "best-effort"
)

type Config struct {
	MaxConcurrentPDFs int           `validate:"min=1,max=10"`
	MaxWorkersPerPDF  int           `validate:"min=1,max=10"`
	WorkerTimeout     time.Duration `validate:"required"`
	ParsingMode       ParsingMode   `validate:"oneof=strict best-effort"`
	MaxRetries        int           `validate:"min=0,max=3"`
	MaxTotalChars     int           `validate:"min=0"`
	// MaxPageTreeDepth bounds how deep the /Pages tree walk recurses
	// before a cycle or pathological nesting is treated as exhaustion.
	// Zero falls back to NewDefaultConfig's limit (see (*Reader).config).
	MaxPageTreeDepth int `validate:"omitempty,min=1"`
	// MaxQDepth bounds the content stream's q/Q graphics-state stack.
	// Zero falls back to NewDefaultConfig's limit.
	MaxQDepth int `validate:"omitempty,min=1"`
	// MaxFormDepth bounds recursive Do invocations of form XObjects.
	// Zero falls back to NewDefaultConfig's limit.
	MaxFormDepth int `validate:"omitempty,min=1"`
	DebugOn      bool
	Logger       logger.LogFunc
	// Metrics           MetricsInterface
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxConcurrentPDFs: 5,
		MaxWorkersPerPDF:  1,
		WorkerTimeout:     5 * time.Second,
		ParsingMode:       BestEffort,
		MaxRetries:        3,
		MaxTotalChars:     0,
		MaxPageTreeDepth:  32,
		MaxQDepth:         64,
		MaxFormDepth:      16,
		DebugOn:           false,
	}
}

func (cfg *Config) Validate() error {
	logger.Debug("Validating Config Object")
	validate := validator.New()
	return validate.Struct(cfg)
}
