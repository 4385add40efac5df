// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-save-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, backend string) string {
	if strings.TrimSpace(backend) == "" {
		backend = "N/A"
	}

	rows := [][2]string{
		{"Приложение", "GoSaveKeeper"},
		{"Версия", info.BuildVersion()},
		{"Дата сборки", info.BuildDate()},
		{"Коммит", info.BuildCommit()},
		{"Хранилище", backend},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-12s │ %s\n", row[0], row[1]))
	}

	return renderPage("О ПРОГРАММЕ", strings.TrimRight(b.String(), "\n"), "esc / v: назад")
}
