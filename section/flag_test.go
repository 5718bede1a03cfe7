package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hufftree/endian"
	"github.com/arloliu/hufftree/errs"
	"github.com/arloliu/hufftree/format"
)

func TestNewFrameFlag(t *testing.T) {
	require := require.New(t)

	flag := NewFrameFlag()
	require.True(flag.IsValidMagicNumber())
	require.True(flag.IsLittleEndian())
	require.False(flag.IsBigEndian())
	require.True(flag.HasChecksum())
	require.Equal(format.CompressionNone, flag.Compression())
	require.Equal(uint16(0x4851), flag.Options)
	require.NoError(flag.Validate())
}

func TestFrameFlag_Setters(t *testing.T) {
	require := require.New(t)

	flag := NewFrameFlag()

	flag.WithBigEndian()
	require.True(flag.IsBigEndian())
	require.Equal(endian.GetBigEndianEngine(), flag.GetEndianEngine())

	flag.WithLittleEndian()
	require.True(flag.IsLittleEndian())
	require.Equal(endian.GetLittleEndianEngine(), flag.GetEndianEngine())

	flag.SetChecksum(false)
	require.False(flag.HasChecksum())
	flag.SetChecksum(true)
	require.True(flag.HasChecksum())

	flag.SetCompression(format.CompressionLZ4)
	require.Equal(format.CompressionLZ4, flag.Compression())

	// setters never touch the magic number
	require.Equal(uint16(MagicFrameV1Opt), flag.GetMagicNumber())
}

func TestFrameFlag_Validate(t *testing.T) {
	tests := []struct {
		name    string
		flag    FrameFlag
		wantErr error
	}{
		{"valid", FrameFlag{Options: MagicFrameV1Opt, CompressionType: uint8(format.CompressionZstd)}, nil},
		{"bad magic", FrameFlag{Options: 0x1230, CompressionType: uint8(format.CompressionNone)}, errs.ErrInvalidMagicNumber},
		{"reserved bit", FrameFlag{Options: MagicFrameV1Opt | 0x0004, CompressionType: uint8(format.CompressionNone)}, errs.ErrInvalidHeaderFlags},
		{"unknown compression", FrameFlag{Options: MagicFrameV1Opt, CompressionType: 0x09}, errs.ErrInvalidHeaderFlags},
		{"zero compression", FrameFlag{Options: MagicFrameV1Opt}, errs.ErrInvalidHeaderFlags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.flag.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
