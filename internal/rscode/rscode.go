// Package rscode adapts github.com/Picocrypt/infectious's systematic
// Reed-Solomon codec to the detached parity/data shape a Token needs:
// 34 data bytes protected by 14 parity bytes, kept in separate buffers
// rather than interleaved into a single 48-byte codeword.
package rscode

import (
	"sync"

	"github.com/Picocrypt/infectious"
)

// DataSize is the number of protected data bytes (the frame).
const DataSize = 34

// ParitySize is the number of parity bytes.
const ParitySize = 14

// TotalSize is DataSize + ParitySize, the full codeword length.
const TotalSize = DataSize + ParitySize

var (
	fec     *infectious.FEC
	fecOnce sync.Once
)

// codec returns the package-level Reed-Solomon codec, constructed once.
// DataSize and ParitySize are fixed constants, so infectious.NewFEC can
// only fail here if those constants were changed to something invalid;
// MustCompile-style panic is appropriate for a codec with no runtime
// configuration.
func codec() *infectious.FEC {
	fecOnce.Do(func() {
		f, err := infectious.NewFEC(DataSize, TotalSize)
		if err != nil {
			panic("rscode: invalid fixed FEC parameters: " + err.Error())
		}
		fec = f
	})
	return fec
}

// GenerateParity computes the 14 parity bytes for a 34-byte data block.
func GenerateParity(data [DataSize]byte) (parity [ParitySize]byte, err error) {
	err = codec().Encode(data[:], func(s infectious.Share) {
		if s.Number >= DataSize {
			parity[s.Number-DataSize] = s.Data[0]
		}
	})
	return parity, err
}

// CorrectDetached attempts to recover the canonical data and parity
// buffers in place. It treats data and parity together as a single
// 48-byte systematic codeword: if recoverable (up to 7 arbitrary byte
// errors, floor(ParitySize/2); no byte is marked as an erasure), both
// buffers are overwritten with their corrected values.
// On failure neither buffer is touched and the error describes why
// decoding gave up.
func CorrectDetached(parity *[ParitySize]byte, data *[DataSize]byte) error {
	shares := make([]infectious.Share, TotalSize)
	for i := 0; i < DataSize; i++ {
		shares[i] = infectious.Share{Number: i, Data: []byte{data[i]}}
	}
	for i := 0; i < ParitySize; i++ {
		shares[DataSize+i] = infectious.Share{Number: DataSize + i, Data: []byte{parity[i]}}
	}

	corrected, err := codec().Decode(nil, shares)
	if err != nil {
		return err
	}

	var correctedData [DataSize]byte
	copy(correctedData[:], corrected)

	correctedParity, err := GenerateParity(correctedData)
	if err != nil {
		return err
	}

	*data = correctedData
	*parity = correctedParity
	return nil
}
