// Copyright (C) 2026 Axiom
// SPDX-License-Identifier: AGPL-3.0-or-later

package protocol

import (
	"github.com/google/uuid"

	"github.com/anuj846k/Covenant-Logic-Compiler/internal/common"
)

// Re-export common types so protocol users need a single import.
type Metadata = common.Metadata

// Event is re-exported from common.
type Event = common.Event

// CurrentProtocolVersion is re-exported from common.
const CurrentProtocolVersion = common.CurrentProtocolVersion

// NewMetadata returns Metadata with a fresh correlation id and the current
// protocol version.
func NewMetadata(agreementID string) Metadata {
	return Metadata{
		AgreementID:   agreementID,
		CorrelationID: uuid.New().String(),
		Version:       CurrentProtocolVersion,
	}
}
