// Copyright (c) 2026 BlockBatch Team
// BlockBatch - batch payment settings console
// This source code is licensed under the MIT license found in the LICENSE file.

// Package settings owns the state of the settings page. Page is a plain
// mutable struct with one setter per UI action; views read it to render
// and call its setters from their update loop. Save, add, edit and delete
// actions are routed to an Actions implementation, which is the place to
// plug a backend in.
package settings
