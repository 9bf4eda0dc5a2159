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


// Package storage provides the storage abstraction layer for peeq.
//
// This package defines the repository interfaces that decouple storage
// implementation from business logic, along with the MUS serialization
// used for stored records. The only durable state peeq keeps is the
// versioned system-prompt history; the product catalog lives in memory
// and is rebuilt from CSV sources.
//
// # Architecture
//
//   - PromptRepository: operations on system-prompt versions
//   - storage/badger: the BadgerDB-backed implementation
//
// Constructors in implementation packages return interface types so
// consumers stay decoupled from BadgerDB specifics. Use
// badger.NewMemoryPromptRepository in tests for an in-memory backend.
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines.
package storage
