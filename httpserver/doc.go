// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package httpserver exposes the shopping assistant over HTTP.
//
// Routes are grouped by concern, each with its own handler struct
// registering itself on a gin router group:
//
//   - POST /api/chat                                conversation endpoint
//   - GET  /api/products/search, /api/products/:id  catalog queries
//   - GET  /api/catalog/summary, /diagnostics       catalog introspection
//   - /api/admin/prompts                            prompt versioning
//   - /api/admin/files                              CSV file administration
//   - POST /api/admin/catalog/reload                explicit cache reset
//
// Uploading or deleting CSV files does not invalidate the product cache;
// operators trigger the reload endpoint when they want the new files
// picked up.
package httpserver
