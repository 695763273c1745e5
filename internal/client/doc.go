// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the notes server.
//
// Commands are built with cobra on top of the client services. Passwords and
// passphrases are read without echo when stdin is a terminal.
package client
