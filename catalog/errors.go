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


package catalog

import "errors"

var (
	// ErrLoaderRequired is returned when a loader is not provided.
	ErrLoaderRequired = errors.New("loader required")

	// ErrDirRequired is returned when a source directory is not provided.
	ErrDirRequired = errors.New("source directory required")

	// ErrUnknownSchema indicates a file header matched no known vendor schema.
	ErrUnknownSchema = errors.New("unknown vendor schema")

	// ErrNoIdentity indicates a row carried no field usable as a product id.
	ErrNoIdentity = errors.New("no identifying fields")
)
