// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errHTTPHandlerNotCreated is returned by NewHandlers when the HTTP handler
// cannot be built, e.g. because an embedded page template fails to parse.
// The application treats it as fatal at startup.
var errHTTPHandlerNotCreated = errors.New("http handler is not created")
