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

import "fmt"

// ValidateChatMessage validates a ChatMessage according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//   - Role must be valid (User or Assistant)
func ValidateChatMessage(message *ChatMessage) error {
	if message == nil {
		return fmt.Errorf("%w: message is nil", ErrInvalidChatMessage)
	}

	if message.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChatMessage, ErrEmptyContent)
	}

	if err := ValidateRole(message.Role); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChatMessage, err)
	}

	return nil
}

// ValidateRole checks that a Role is one of the defined values.
func ValidateRole(role Role) error {
	switch role {
	case RoleUser, RoleAssistant:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidRole, role)
	}
}

// ValidatePromptRecord validates a PromptRecord according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//   - Version must be positive
//
// NOT validated (populated by the repository):
//   - CreatedAt (set on insert)
//   - Active (managed by the repository's single-active invariant)
func ValidatePromptRecord(record *PromptRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidPromptRecord)
	}

	if record.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPromptRecord, ErrEmptyContent)
	}

	if record.Version <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPromptRecord, ErrInvalidVersion)
	}

	return nil
}
