// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-spine-client/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, userAgent, server string) string {
	var b strings.Builder

	b.WriteString("Application: go-spine-client\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n")
	b.WriteString("User-Agent: ")
	b.WriteString(valueOrNA(userAgent))
	b.WriteString("\n")
	b.WriteString("Server: ")
	b.WriteString(valueOrNA(server))

	return renderPage("ABOUT", b.String(), helpLine(keys.back))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
