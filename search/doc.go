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


// Package search ranks catalog products against free-text queries.
//
// The Engine implements a two-pass keyword matcher over the cached
// catalog:
//   - Strict pass: every surviving query token must appear in the
//     product's searchable text (name, description, category, brand).
//   - Fallback pass: when nothing satisfies all tokens, products are
//     scored by how many tokens they match and ranked by that count.
//
// Queries that reduce to zero usable tokens fall back to a raw substring
// match over name and brand only. Results are deduplicated by id and
// capped at ten entries. Search never fails; an empty catalog or a
// no-match query yields an empty result.
package search
