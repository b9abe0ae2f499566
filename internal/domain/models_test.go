package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMusicValidate(t *testing.T) {
	cases := []struct {
		name string
		in   NewMusic
		ok   bool
	}{
		{"complete", NewMusic{Name: "Song A", PicID: "p", AudioID: "a"}, true},
		{"no name", NewMusic{PicID: "p", AudioID: "a"}, false},
		{"no pic", NewMusic{Name: "Song A", AudioID: "a"}, false},
		{"no audio", NewMusic{Name: "Song A", PicID: "p"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
		})
	}
}

func TestFail(t *testing.T) {
	m := Fail("Error uploading files.", errors.New("boom"))
	assert.Equal(t, "Error uploading files.", m.Message)
	assert.Equal(t, "boom", m.Error)

	assert.Empty(t, Fail("x", nil).Error)
}
