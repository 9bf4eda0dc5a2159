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


// Package ai provides abstractions for the AI shopping assistant.
//
// This package defines interfaces for the conversational assistant and the
// tools it is allowed to call. It follows the dependency inversion principle,
// allowing the HTTP layer and CLI to depend on abstractions rather than a
// concrete model client.
//
// The package is designed around three key interfaces:
//
//   - Assistant: produces a reply for a conversation
//   - Toolbox: the catalog operations the model may invoke
//   - PromptSource: supplies the active system prompt
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewAssistant) return INTERFACE types to enforce
// abstraction and prevent accidental coupling to concrete implementations.
// Mock constructors return CONCRETE types so tests can inject behavior and
// make assertions (CallCount, function fields, Reset).
package ai
