// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the one-shot jobs the token server performs at
// startup, before it starts accepting traffic.
package workers

import "context"

// Worker is a startup job. Run blocks until the job is done or ctx ends;
// failures are logged by the worker itself and never stop the server.
type Worker interface {
	Run(ctx context.Context)
}
