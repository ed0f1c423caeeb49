// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants.
//
// The Msg* constants are the "detail" strings the analysis server is known to
// send. The client matches them to attach a hint to an error; it never
// rewrites the text the user sees.
package app

const (
	// MsgModelNotLoaded is sent with 503 when the server has no model weights.
	MsgModelNotLoaded = "Model not loaded"

	// MsgEmptyFile is sent with 400 when the uploaded part has no bytes.
	MsgEmptyFile = "Empty file"

	// MsgInvalidImagePrefix starts the 400 detail for undecodable images,
	// followed by the decoder's message.
	MsgInvalidImagePrefix = "Invalid image: "
)
