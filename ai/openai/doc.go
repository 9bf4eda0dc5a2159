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


// Package openai implements the ai.Assistant interface using
// OpenAI-compatible chat completion APIs.
//
// The assistant runs a tool-calling loop: the model may invoke the catalog
// search and summary tools before producing its final reply, bounded by the
// configured step limit. Tool failures are reported back to the model as
// text so it can recover within the conversation instead of aborting it.
package openai
