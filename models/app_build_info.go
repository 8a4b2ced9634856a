// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable stands in for build metadata the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo is the version banner of the record service and the CLI,
// filled from -ldflags "-X main.buildVersion=..." at release time. The
// server reports it on /version and /api/version; the CLI on --version.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the release tag, empty when none was injected.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the one-line banner, e.g. "1.4.0 (date: 2026-10-01,
// commit: 9f2c1e7)". Missing parts read N/A.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (date: %s, commit: %s)",
		orNotAvailable(a.buildVersion), orNotAvailable(a.buildDate), orNotAvailable(a.buildCommit))
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
