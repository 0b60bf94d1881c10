// Copyright 2026 The Altyapi Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/altyapi/altyapi/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
