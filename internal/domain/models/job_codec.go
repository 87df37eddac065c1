package models

import (
	"fmt"

	"github.com/go-faster/jx"
)

func EncodeJobPayload(p JobPayload) []byte {
	var e jx.Encoder

	e.Obj(func(e *jx.Encoder) {
		if len(p.Handles) > 0 {
			e.Field("handles", func(e *jx.Encoder) { encodeStrings(e, p.Handles) })
		}

		if p.Handle != "" {
			e.Field("handle", func(e *jx.Encoder) { e.Str(p.Handle) })
		}

		if p.ChannelRef != "" {
			e.Field("channel_ref", func(e *jx.Encoder) { e.Str(p.ChannelRef) })
		}

		if len(p.CandidateIDs) > 0 {
			e.Field("candidate_ids", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, id := range p.CandidateIDs {
						e.Int64(id)
					}
				})
			})
		}

		if len(p.Folders) > 0 {
			e.Field("folders", func(e *jx.Encoder) { encodeFolders(e, p.Folders) })
		}

		if p.Reason != "" {
			e.Field("reason", func(e *jx.Encoder) { e.Str(p.Reason) })
		}
	})

	return e.Bytes()
}

func DecodeJobPayload(data []byte) (JobPayload, error) {
	var p JobPayload

	if len(data) == 0 {
		return p, nil
	}

	err := jx.DecodeBytes(data).Obj(func(d *jx.Decoder, key string) error {
		var err error

		switch key {
		case "handles":
			p.Handles, err = decodeStrings(d)
		case "handle":
			p.Handle, err = d.Str()
		case "channel_ref":
			p.ChannelRef, err = d.Str()
		case "candidate_ids":
			p.CandidateIDs, err = decodeInts(d)
		case "folders":
			p.Folders, err = decodeFolders(d)
		case "reason":
			p.Reason, err = d.Str()
		default:
			err = d.Skip()
		}

		return err
	})
	if err != nil {
		return JobPayload{}, fmt.Errorf("ошибка при разборе метаданных задачи: %w", err)
	}

	return p, nil
}

func EncodeFolders(folders []DialogFilter) []byte {
	var e jx.Encoder

	encodeFolders(&e, folders)

	return e.Bytes()
}

func DecodeFolders(data []byte) ([]DialogFilter, error) {
	folders, err := decodeFolders(jx.DecodeBytes(data))
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе списка папок: %w", err)
	}

	return folders, nil
}

func EncodeFolderMembers(folders []FolderMembers) []byte {
	var e jx.Encoder

	e.Arr(func(e *jx.Encoder) {
		for _, f := range folders {
			e.Obj(func(e *jx.Encoder) {
				e.Field("title", func(e *jx.Encoder) { e.Str(f.Title) })
				e.Field("members", func(e *jx.Encoder) {
					e.Arr(func(e *jx.Encoder) {
						for _, m := range f.Members {
							e.Obj(func(e *jx.Encoder) {
								e.Field("id", func(e *jx.Encoder) { e.Int64(m.ID) })
								e.Field("username", func(e *jx.Encoder) { e.Str(m.Username) })
								e.Field("first_name", func(e *jx.Encoder) { e.Str(m.FirstName) })
								e.Field("last_name", func(e *jx.Encoder) { e.Str(m.LastName) })
								e.Field("phone", func(e *jx.Encoder) { e.Str(m.Phone) })
							})
						}
					})
				})
			})
		}
	})

	return e.Bytes()
}

func encodeStrings(e *jx.Encoder, values []string) {
	e.Arr(func(e *jx.Encoder) {
		for _, v := range values {
			e.Str(v)
		}
	})
}

func encodeInts(e *jx.Encoder, values []int64) {
	e.Arr(func(e *jx.Encoder) {
		for _, v := range values {
			e.Int64(v)
		}
	})
}

func encodeFolders(e *jx.Encoder, folders []DialogFilter) {
	e.Arr(func(e *jx.Encoder) {
		for _, f := range folders {
			e.Obj(func(e *jx.Encoder) {
				e.Field("id", func(e *jx.Encoder) { e.Int64(f.ID) })
				e.Field("title", func(e *jx.Encoder) { e.Str(f.Title) })
				e.Field("include_peers", func(e *jx.Encoder) { encodeInts(e, f.IncludePeers) })
				e.Field("pinned_peers", func(e *jx.Encoder) { encodeInts(e, f.PinnedPeers) })
			})
		}
	})
}

func decodeStrings(d *jx.Decoder) ([]string, error) {
	values := make([]string, 0)

	err := d.Arr(func(d *jx.Decoder) error {
		v, err := d.Str()
		if err != nil {
			return err
		}

		values = append(values, v)

		return nil
	})

	return values, err
}

func decodeInts(d *jx.Decoder) ([]int64, error) {
	values := make([]int64, 0)

	err := d.Arr(func(d *jx.Decoder) error {
		v, err := d.Int64()
		if err != nil {
			return err
		}

		values = append(values, v)

		return nil
	})

	return values, err
}

func decodeFolders(d *jx.Decoder) ([]DialogFilter, error) {
	folders := make([]DialogFilter, 0)

	err := d.Arr(func(d *jx.Decoder) error {
		var f DialogFilter

		err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error

			switch key {
			case "id":
				f.ID, err = d.Int64()
			case "title":
				f.Title, err = d.Str()
			case "include_peers":
				f.IncludePeers, err = decodeInts(d)
			case "pinned_peers":
				f.PinnedPeers, err = decodeInts(d)
			default:
				err = d.Skip()
			}

			return err
		})
		if err != nil {
			return err
		}

		folders = append(folders, f)

		return nil
	})

	return folders, err
}

func DecodeFolderMembers(data []byte) ([]FolderMembers, error) {
	folders := make([]FolderMembers, 0)

	err := jx.DecodeBytes(data).Arr(func(d *jx.Decoder) error {
		var f FolderMembers

		err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error

			switch key {
			case "title":
				f.Title, err = d.Str()
			case "members":
				f.Members, err = decodeMembers(d)
			default:
				err = d.Skip()
			}

			return err
		})
		if err != nil {
			return err
		}

		folders = append(folders, f)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе участников папок: %w", err)
	}

	return folders, nil
}

func decodeMembers(d *jx.Decoder) ([]Entity, error) {
	members := make([]Entity, 0)

	err := d.Arr(func(d *jx.Decoder) error {
		var m Entity

		err := d.Obj(func(d *jx.Decoder, key string) error {
			var err error

			switch key {
			case "id":
				m.ID, err = d.Int64()
			case "username":
				m.Username, err = d.Str()
			case "first_name":
				m.FirstName, err = d.Str()
			case "last_name":
				m.LastName, err = d.Str()
			case "phone":
				m.Phone, err = d.Str()
			default:
				err = d.Skip()
			}

			return err
		})
		if err != nil {
			return err
		}

		members = append(members, m)

		return nil
	})

	return members, err
}
