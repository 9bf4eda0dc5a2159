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


// Package catalog loads vendor CSV exports into the unified product model.
//
// The Loader discovers CSV files in a primary directory (plus one optional
// scraper subdirectory), detects which vendor schema each file uses from
// its header row, and maps rows into core.Product values. Failures are
// contained at the smallest scope: a bad row drops that row, a bad file
// skips that file, and both are recorded as Diagnostics rather than
// surfaced as errors.
//
// The Cache memoizes the merged, deduplicated catalog for the process
// lifetime. Concurrent cold callers are collapsed into a single load via
// singleflight, so the file system is read at most once per fill.
package catalog
