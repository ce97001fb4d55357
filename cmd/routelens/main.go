// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Command routelens analyzes route dependencies in app-router web
// projects.
//
// Given a route like /marketplace, routelens finds the page file behind
// it and statically walks its import graph to report every local source
// file the route depends on: components, services, API routes, types,
// hooks, and utils.
//
// Usage:
//
//	routelens analyze /marketplace
//	routelens analyze /marketplace /profile --json
//	routelens watch /marketplace
//	routelens serve --port 8080
//	routelens reports list
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
