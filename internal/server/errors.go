// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated is returned by NewServer when the configuration
// carries no HTTP listen address, leaving the editor surface with nothing
// to connect to. Treated as a fatal misconfiguration at startup.
var errNoServersAreCreated = errors.New("no servers are created")
