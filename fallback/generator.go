// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

// Package fallback drives message formatting across a locale fallback
// chain: given a Generator that produces bundles for an ordered locale
// and resource-id list, it lazily caches the produced bundles and walks
// them in priority order until every requested key has resolved.
package fallback

import (
	"context"
	"iter"

	"github.com/worldiety/fluent"
	"golang.org/x/text/language"
)

// BundleResult is one element of a Generator's sequence: a bundle,
// optionally paired with errors encountered constructing it. A non-empty
// Errors does not stop the walk — the driver treats Bundle as
// partially valid and keeps formatting with it.
type BundleResult struct {
	Bundle *fluent.Bundle
	Errors []error
}

// Generator is the external collaborator that supplies bundles for a
// locale list and resource-id list, highest priority first. Fetching the
// underlying resources (from a filesystem, an embed.FS, a remote store)
// is entirely its concern; the fallback driver only consumes the
// sequence it produces.
type Generator interface {
	// BundlesIter returns a finite, ordered synchronous sequence.
	BundlesIter(locales []language.Tag, resourceIDs []string) iter.Seq[BundleResult]
	// BundlesStream returns a cooperative item sequence with the same
	// element shape. Closing ctx aborts the walk; bundles already
	// delivered remain valid for future calls.
	BundlesStream(ctx context.Context, locales []language.Tag, resourceIDs []string) <-chan BundleResult
}
