// Copyright (c) 2025 worldiety GmbH
//
// This file is part of the NAGO Low-Code Platform.
// Licensed under the terms specified in the LICENSE file.
//
// SPDX-License-Identifier: BSD-2-Clause

package fallback

import (
	"context"
	"strings"
	"sync"

	"github.com/worldiety/fluent"
	"golang.org/x/text/language"
)

type driverMode int8

const (
	modeNone driverMode = iota
	modeSync
	modeAsync
)

// Driver resolves messages across a locale fallback chain. It holds one
// lazily-initialized cache of bundles produced by a Generator; the
// cache is discarded and rebuilt whenever the resource-id list changes
// or a cooperative call follows synchronous ones. A synchronous call
// while the cache is in cooperative mode does not switch it back; it
// returns ErrSyncRequestInAsyncMode.
type Driver struct {
	gen         Generator
	locales     []language.Tag
	resourceIDs []string

	mu     sync.Mutex
	mode   driverMode
	cache  *Cache
	acache *AsyncCache
}

// NewDriver constructs a Driver over gen for the given locale priority
// list and resource-id list.
func NewDriver(gen Generator, locales []language.Tag, resourceIDs []string) *Driver {
	return &Driver{
		gen:         gen,
		locales:     append([]language.Tag(nil), locales...),
		resourceIDs: append([]string(nil), resourceIDs...),
	}
}

// SetResourceIDs replaces the resource-id list and invalidates the
// current cache, so the next call re-walks the generator from scratch.
func (d *Driver) SetResourceIDs(ids []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resourceIDs = append([]string(nil), ids...)
	d.invalidateLocked()
}

func (d *Driver) invalidateLocked() {
	if d.cache != nil {
		d.cache.Close()
	}
	d.cache = nil
	d.acache = nil
	d.mode = modeNone
}

func (d *Driver) syncSource() (bundleSource, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mode == modeAsync {
		return nil, ErrSyncRequestInAsyncMode
	}
	if d.cache == nil {
		d.cache = newCache(d.gen.BundlesIter(d.locales, d.resourceIDs))
		d.mode = modeSync
	}
	cache := d.cache

	return func(_ context.Context, idx int) (BundleResult, bool, error) {
		v, ok := cache.At(idx)
		return v, ok, nil
	}, nil
}

func (d *Driver) asyncSource(ctx context.Context) bundleSource {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.mode != modeAsync {
		if d.cache != nil {
			d.cache.Close()
			d.cache = nil
		}
		d.acache = newAsyncCache(d.gen.BundlesStream(ctx, d.locales, d.resourceIDs))
		d.mode = modeAsync
	}
	acache := d.acache

	return func(ctx context.Context, idx int) (BundleResult, bool, error) {
		return acache.At(ctx, idx)
	}
}

// bundleSource abstracts over Cache.At and AsyncCache.At so the
// resolution policy below is written once and shared by both modes.
type bundleSource func(ctx context.Context, idx int) (BundleResult, bool, error)

// FormattedMessage is the result of resolving one message's full shape:
// its value (if it has one) and every attribute, each independently
// fallen back across the locale chain.
type FormattedMessage struct {
	Value      string
	HasValue   bool
	Attributes map[string]string
}

// FormatValue resolves a single message's value: the first bundle that
// has id with a value wins; bundles that lack id, or have it without a
// value, contribute a MissingMessage/MissingValue error and the walk
// continues.
func (d *Driver) FormatValue(id string, args *fluent.Args) (string, []error) {
	values, errs := d.FormatValues([]string{id}, args)
	return values[id], errs
}

// FormatValueAsync is the cooperative analog of FormatValue.
func (d *Driver) FormatValueAsync(ctx context.Context, id string, args *fluent.Args) (string, []error) {
	values, errs := d.FormatValuesAsync(ctx, []string{id}, args)
	return values[id], errs
}

// FormatValues resolves several message values in one fallback walk:
// each bundle is asked for every id not yet resolved, and the walk
// stops as soon as none remain.
func (d *Driver) FormatValues(ids []string, args *fluent.Args) (map[string]string, []error) {
	src, err := d.syncSource()
	if err != nil {
		return nil, []error{err}
	}
	return formatValues(context.Background(), src, ids, args)
}

// FormatValuesAsync is the cooperative analog of FormatValues.
func (d *Driver) FormatValuesAsync(ctx context.Context, ids []string, args *fluent.Args) (map[string]string, []error) {
	src := d.asyncSource(ctx)
	return formatValues(ctx, src, ids, args)
}

type valueState struct {
	resolved        bool
	hadValuelessHit bool
	value           string
}

func formatValues(ctx context.Context, src bundleSource, ids []string, args *fluent.Args) (map[string]string, []error) {
	states := make(map[string]*valueState, len(ids))
	for _, id := range ids {
		states[id] = &valueState{}
	}

	var errs []error
	remaining := len(ids)

	for idx := 0; remaining > 0; idx++ {
		res, ok, err := src(ctx, idx)
		if err != nil {
			errs = append(errs, err)
			break
		}
		if !ok {
			break
		}
		errs = append(errs, res.Errors...)

		for _, id := range ids {
			st := states[id]
			if st.resolved {
				continue
			}

			msg, found := res.Bundle.GetMessage(id)
			if !found {
				errs = append(errs, errMissingMessage(id, res.Bundle.Locale()))
				continue
			}
			if msg.Value == nil {
				st.hadValuelessHit = true
				errs = append(errs, errMissingValue(id, res.Bundle.Locale()))
				continue
			}

			out, formatErrs := res.Bundle.Format(id, args)
			if len(formatErrs) > 0 {
				errs = append(errs, errResolver(id, res.Bundle.Locale(), formatErrs))
			}
			st.resolved = true
			st.value = out
			remaining--
		}
	}

	values := make(map[string]string, len(ids))
	for _, id := range ids {
		st := states[id]
		if st.resolved {
			values[id] = st.value
			continue
		}
		if st.hadValuelessHit {
			errs = append(errs, errMissingValueNoLocale(id))
		} else {
			errs = append(errs, errMissingMessageNoLocale(id))
		}
	}

	return values, errs
}

type messageState struct {
	resolved        bool
	hadValuelessHit bool
	result          FormattedMessage
}

// FormatMessages resolves several messages' full shape (value and
// attributes), following the same per-id fallback policy as
// FormatValues.
func (d *Driver) FormatMessages(ids []string, args *fluent.Args) (map[string]FormattedMessage, []error) {
	src, err := d.syncSource()
	if err != nil {
		return nil, []error{err}
	}
	return formatMessages(context.Background(), src, ids, args)
}

// FormatMessagesAsync is the cooperative analog of FormatMessages.
func (d *Driver) FormatMessagesAsync(ctx context.Context, ids []string, args *fluent.Args) (map[string]FormattedMessage, []error) {
	src := d.asyncSource(ctx)
	return formatMessages(ctx, src, ids, args)
}

func formatMessages(ctx context.Context, src bundleSource, ids []string, args *fluent.Args) (map[string]FormattedMessage, []error) {
	states := make(map[string]*messageState, len(ids))
	for _, id := range ids {
		states[id] = &messageState{}
	}

	var errs []error
	remaining := len(ids)

	for idx := 0; remaining > 0; idx++ {
		res, ok, err := src(ctx, idx)
		if err != nil {
			errs = append(errs, err)
			break
		}
		if !ok {
			break
		}
		errs = append(errs, res.Errors...)

		for _, id := range ids {
			st := states[id]
			if st.resolved {
				continue
			}

			msg, found := res.Bundle.GetMessage(id)
			if !found {
				errs = append(errs, errMissingMessage(id, res.Bundle.Locale()))
				continue
			}
			if msg.Value == nil {
				st.hadValuelessHit = true
				errs = append(errs, errMissingValue(id, res.Bundle.Locale()))
				continue
			}

			var out strings.Builder
			formatErrs := res.Bundle.FormatPattern(&out, msg.Value, args)
			fm := FormattedMessage{Value: out.String(), HasValue: true, Attributes: map[string]string{}}

			for _, attr := range msg.Attributes {
				var abuf strings.Builder
				aErrs := res.Bundle.FormatPattern(&abuf, attr.Value, args)
				formatErrs = append(formatErrs, aErrs...)
				fm.Attributes[attr.ID.Name] = abuf.String()
			}

			if len(formatErrs) > 0 {
				errs = append(errs, errResolver(id, res.Bundle.Locale(), formatErrs))
			}

			st.resolved = true
			st.result = fm
			remaining--
		}
	}

	results := make(map[string]FormattedMessage, len(ids))
	for _, id := range ids {
		st := states[id]
		if st.resolved {
			results[id] = st.result
			continue
		}
		if st.hadValuelessHit {
			errs = append(errs, errMissingValueNoLocale(id))
		} else {
			errs = append(errs, errMissingMessageNoLocale(id))
		}
	}

	return results, errs
}
