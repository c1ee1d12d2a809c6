// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable stands in for build values the linker did not set.
const notAvailable = "N/A"

// AppBuildInfo is the version, date and commit stamped into the encnotes
// binary with -ldflags -X. It backs `encnotes --version`.
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

// BuildVersion returns the release tag, or N/A for local builds.
func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.buildVersion)
}

func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.buildDate)
}

func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.buildCommit)
}

// VersionText is the --version output, one "Build <field>: <value>" line
// per field.
func (a AppBuildInfo) VersionText() string {
	return fmt.Sprintf(
		"Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit(),
	)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
