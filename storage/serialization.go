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


package storage

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/peeq/core"
)

// PromptRecordMUS serializes core.PromptRecord values for storage.
// Timestamps are stored as UTC microseconds.
var PromptRecordMUS = promptRecordSer{}

type promptRecordSer struct{}

func (promptRecordSer) Marshal(record core.PromptRecord, bs []byte) (n int) {
	n = varint.Int64.Marshal(record.Version, bs)
	n += ord.String.Marshal(record.Content, bs[n:])
	n += ord.Bool.Marshal(record.Active, bs[n:])
	n += varint.Int64.Marshal(record.CreatedAt.UnixMicro(), bs[n:])
	return
}

func (promptRecordSer) Unmarshal(bs []byte) (record core.PromptRecord, n int, err error) {
	var n1 int
	record.Version, n, err = varint.Int64.Unmarshal(bs)
	if err != nil {
		return
	}
	record.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	record.Active, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	record.CreatedAt = time.UnixMicro(micros).UTC()
	return
}

func (promptRecordSer) Size(record core.PromptRecord) (size int) {
	size = varint.Int64.Size(record.Version)
	size += ord.String.Size(record.Content)
	size += ord.Bool.Size(record.Active)
	size += varint.Int64.Size(record.CreatedAt.UnixMicro())
	return
}

// MarshalPromptRecord serializes a PromptRecord to bytes.
func MarshalPromptRecord(record *core.PromptRecord) []byte {
	buf := make([]byte, PromptRecordMUS.Size(*record))
	PromptRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalPromptRecord deserializes a PromptRecord from bytes.
func UnmarshalPromptRecord(data []byte) (*core.PromptRecord, error) {
	record, _, err := PromptRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarshalVersion serializes a prompt version number to bytes.
func MarshalVersion(version int64) []byte {
	buf := make([]byte, varint.Int64.Size(version))
	varint.Int64.Marshal(version, buf)
	return buf
}

// UnmarshalVersion deserializes a prompt version number from bytes.
func UnmarshalVersion(data []byte) (int64, error) {
	version, _, err := varint.Int64.Unmarshal(data)
	return version, err
}
