// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package shareable

import (
	"encoding/base64"

	"github.com/klauspost/compress/zstd"

	"github.com/taibuivan/yomira/internal/platform/apperr"
)

func marshalShop(s Shop) []byte {
	w := &writer{}
	w.string(s.Template)
	w.int64Slice(s.WeaponIDs)
	w.int64Slice(s.ArmorIDs)
	w.int64Slice(s.ShieldIDs)
	w.int64Slice(s.EquipmentIDs)
	w.int64Slice(s.ConsumableIDs)
	return w.bytes()
}

func unmarshalShop(data []byte) (*Shop, error) {
	r := newReader(data)
	var s Shop
	var err error
	if s.Template, err = r.string(); err != nil {
		return nil, err
	}
	if s.WeaponIDs, err = r.int64Slice(); err != nil {
		return nil, err
	}
	if s.ArmorIDs, err = r.int64Slice(); err != nil {
		return nil, err
	}
	if s.ShieldIDs, err = r.int64Slice(); err != nil {
		return nil, err
	}
	if s.EquipmentIDs, err = r.int64Slice(); err != nil {
		return nil, err
	}
	if s.ConsumableIDs, err = r.int64Slice(); err != nil {
		return nil, err
	}
	if !r.done() {
		return nil, errMalformed
	}
	return &s, nil
}

func marshalEncounter(e Encounter) []byte {
	w := &writer{}
	w.int32Slice(e.PartyLevels)
	w.int64Slice(e.CreatureIDs)
	w.int64Slice(e.HazardIDs)
	w.bool(e.IsPWLOn)
	return w.bytes()
}

func unmarshalEncounter(data []byte) (*Encounter, error) {
	r := newReader(data)
	var e Encounter
	var err error
	if e.PartyLevels, err = r.int32Slice(); err != nil {
		return nil, err
	}
	if e.CreatureIDs, err = r.int64Slice(); err != nil {
		return nil, err
	}
	if e.HazardIDs, err = r.int64Slice(); err != nil {
		return nil, err
	}
	if e.IsPWLOn, err = r.bool(); err != nil {
		return nil, err
	}
	if !r.done() {
		return nil, errMalformed
	}
	return &e, nil
}

func marshalNpcList(list NpcList) []byte {
	w := &writer{}
	w.int32(int32(len(list.Entries)))
	for _, entry := range list.Entries {
		w.stringSlice(entry.Names)
		w.string(entry.Gender)
		w.string(entry.Ancestry)
		w.string(entry.Culture)
		w.string(entry.Nickname)
		w.int32(entry.Level)
		w.string(entry.Job)
		w.string(entry.Class)
	}
	return w.bytes()
}

func unmarshalNpcList(data []byte) (*NpcList, error) {
	r := newReader(data)
	n, err := r.int32()
	if err != nil {
		return nil, err
	}
	if n < 0 || int(n) > maxLen {
		return nil, errMalformed
	}
	entries := make([]NpcEntry, n)
	for i := range entries {
		if entries[i].Names, err = r.stringSlice(); err != nil {
			return nil, err
		}
		if entries[i].Gender, err = r.string(); err != nil {
			return nil, err
		}
		if entries[i].Ancestry, err = r.string(); err != nil {
			return nil, err
		}
		if entries[i].Culture, err = r.string(); err != nil {
			return nil, err
		}
		if entries[i].Nickname, err = r.string(); err != nil {
			return nil, err
		}
		if entries[i].Level, err = r.int32(); err != nil {
			return nil, err
		}
		if entries[i].Job, err = r.string(); err != nil {
			return nil, err
		}
		if entries[i].Class, err = r.string(); err != nil {
			return nil, err
		}
	}
	if !r.done() {
		return nil, errMalformed
	}
	return &NpcList{Entries: entries}, nil
}

func compress(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer encoder.Close()
	return encoder.EncodeAll(data, nil), nil
}

func decompress(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()
	return decoder.DecodeAll(data, nil)
}

func encodeBlob(data []byte) (string, error) {
	compressed, err := compress(data)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return base64.RawURLEncoding.EncodeToString(compressed), nil
}

// badLink wraps every decode failure (bad base64, bad zstd frame, malformed
// field layout) behind one user-facing message: the blob itself never
// reveals which stage rejected it.
func badLink() error {
	return apperr.ValidationError("bad link")
}

func decodeBlob(blob string) ([]byte, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(blob)
	if err != nil {
		return nil, badLink()
	}
	data, err := decompress(compressed)
	if err != nil {
		return nil, badLink()
	}
	return data, nil
}

// EncodeShop serializes and compresses a shop payload into a shareable blob.
func EncodeShop(s Shop) (string, error) {
	return encodeBlob(marshalShop(s))
}

// DecodeShop recovers a shop payload from a shareable blob.
func DecodeShop(blob string) (*Shop, error) {
	data, err := decodeBlob(blob)
	if err != nil {
		return nil, err
	}
	shop, err := unmarshalShop(data)
	if err != nil {
		return nil, badLink()
	}
	return shop, nil
}

// EncodeEncounter serializes and compresses an encounter payload into a
// shareable blob.
func EncodeEncounter(e Encounter) (string, error) {
	return encodeBlob(marshalEncounter(e))
}

// DecodeEncounter recovers an encounter payload from a shareable blob.
func DecodeEncounter(blob string) (*Encounter, error) {
	data, err := decodeBlob(blob)
	if err != nil {
		return nil, err
	}
	encounter, err := unmarshalEncounter(data)
	if err != nil {
		return nil, badLink()
	}
	return encounter, nil
}

// EncodeNpcList serializes and compresses an NPC-list payload into a
// shareable blob.
func EncodeNpcList(list NpcList) (string, error) {
	return encodeBlob(marshalNpcList(list))
}

// DecodeNpcList recovers an NPC-list payload from a shareable blob.
func DecodeNpcList(blob string) (*NpcList, error) {
	data, err := decodeBlob(blob)
	if err != nil {
		return nil, err
	}
	list, err := unmarshalNpcList(data)
	if err != nil {
		return nil, badLink()
	}
	return list, nil
}
