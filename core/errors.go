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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidChatMessage indicates a ChatMessage failed validation.
	ErrInvalidChatMessage = errors.New("invalid chat message")

	// ErrInvalidPromptRecord indicates a PromptRecord failed validation.
	ErrInvalidPromptRecord = errors.New("invalid prompt record")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidRole indicates an invalid Role value.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidVersion indicates a prompt version that is not positive.
	ErrInvalidVersion = errors.New("version must be positive")
)
