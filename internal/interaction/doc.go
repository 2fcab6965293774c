// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package interaction implements the state transitions shared by every
// user-generated list of the portal: bulletin posts, helpdesk tickets, food
// suggestions and wishlist entries.
//
// A record carries independent per-user facets. It can be seen and voted at
// the same time. The functions here are pure: they take a record header or a
// tally, return the next value and never touch storage. The service layer
// persists the result inside a single transaction.
package interaction
