// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines configuration and error classes shared by the
// pdfharvest stages: fetching the page, extracting links, downloading PDFs,
// and validating what was downloaded.
package types
