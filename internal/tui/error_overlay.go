// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-save-keeper/internal/service"

type errorOverlayModel struct {
	message string
}

// newErrorOverlay shows the player-facing text of err's kind. Driver and
// file system details stay in the log.
func newErrorOverlay(err error) errorOverlayModel {
	return errorOverlayModel{message: service.KindOf(err).Message()}
}

func (m errorOverlayModel) View() string {
	content := "Ошибка\n\n" + m.message + "\n\nenter / esc закрыть"
	return overlayBoxStyle.Render(content)
}
