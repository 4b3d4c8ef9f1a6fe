package wyrand

import "encoding/json"

// state is the persisted form of a generator: the raw state word under a
// fixed field name. Serialization intentionally exposes what String hides;
// save/restore needs the exact state.
type state struct {
	Seed uint64 `json:"seed"`
}

// MarshalJSON encodes the generator as {"seed":N}.
func (r *WyRand) MarshalJSON() ([]byte, error) {
	return json.Marshal(state{Seed: r.seed})
}

// UnmarshalJSON restores a generator whose output continues bit-for-bit
// where the serialized one left off.
func (r *WyRand) UnmarshalJSON(data []byte) error {
	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	r.seed = s.Seed
	return nil
}
