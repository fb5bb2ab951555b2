package protocol

import "testing"

func TestDecodeWithoutChecksum(t *testing.T) {
	codec := NewCodec(WithoutChecksum())

	tests := []struct {
		name         string
		frame        string
		wantCode     Code
		wantConsumed int
		wantName     string
		wantParams   []string
	}{
		{
			name:         "empty input is a still-accumulating segment",
			frame:        "",
			wantConsumed: 0,
		},
		{
			name:         "command without parameters",
			frame:        "[CSE]",
			wantConsumed: 5,
			wantName:     "CSE",
		},
		{
			name:         "command with one parameter",
			frame:        "[CSB:FF]",
			wantConsumed: 8,
			wantName:     "CSB",
			wantParams:   []string{"FF"},
		},
		{
			name:         "trailing terminator bytes are left unconsumed",
			frame:        "[CSB:FF]\r",
			wantConsumed: 8,
			wantName:     "CSB",
			wantParams:   []string{"FF"},
		},
		{
			name:         "noise ahead of the start marker is skipped",
			frame:        "zz[CPV]",
			wantConsumed: 7,
			wantName:     "CPV",
		},
		{
			name:         "maximum parameter count",
			frame:        "[HELLO:a:b:c:d]",
			wantConsumed: 15,
			wantName:     "HELLO",
			wantParams:   []string{"a", "b", "c", "d"},
		},
		{
			name:         "empty parameters are preserved",
			frame:        "[CMD::x]",
			wantConsumed: 8,
			wantName:     "CMD",
			wantParams:   []string{"", "x"},
		},
		{
			name:     "no start marker",
			frame:    "CPV",
			wantCode: CodeMissingStart,
		},
		{
			name:     "stream ends mid name",
			frame:    "[CPV",
			wantCode: CodeMissingTerminator,
		},
		{
			name:     "start marker only",
			frame:    "[",
			wantCode: CodeMissingTerminator,
		},
		{
			name:     "name fills the buffer",
			frame:    "[ABCDEFGHIJ]",
			wantCode: CodeCommandOverflow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pkt Packet
			consumed, err := codec.Decode([]byte(tt.frame), &pkt)

			if tt.wantCode != CodeSuccess {
				if err == nil {
					t.Fatalf("Decode() expected error %v, got nil", tt.wantCode)
				}
				if CodeOf(err) != tt.wantCode {
					t.Fatalf("Decode() code = %v, want %v", CodeOf(err), tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if consumed != tt.wantConsumed {
				t.Errorf("Decode() consumed = %d, want %d", consumed, tt.wantConsumed)
			}
			if pkt.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", pkt.Name(), tt.wantName)
			}
			if pkt.ParamCount() != len(tt.wantParams) {
				t.Errorf("ParamCount() = %d, want %d", pkt.ParamCount(), len(tt.wantParams))
			}
			for i, want := range tt.wantParams {
				if got := pkt.Param(i); got != want {
					t.Errorf("Param(%d) = %q, want %q", i, got, want)
				}
			}
		})
	}
}

func TestDecodeWithChecksum(t *testing.T) {
	codec := NewCodec()

	tests := []struct {
		name       string
		frame      string
		wantCode   Code
		wantName   string
		wantParams []string
		wantCRC    uint16
	}{
		{
			name:     "valid checksum",
			frame:    "[CSB:FF]3447",
			wantName: "CSB",
			wantParams: []string{
				"FF",
			},
			wantCRC: 0x3447,
		},
		{
			name:     "lowercase hex digits are accepted",
			frame:    "[CPV]7d02",
			wantName: "CPV",
			wantCRC:  0x7D02,
		},
		{
			name:     "checksum mismatch",
			frame:    "[CPV]7D03",
			wantCode: CodeChecksumMismatch,
		},
		{
			name:     "single corrupted body byte",
			frame:    "[CSB:FE]3447",
			wantCode: CodeChecksumMismatch,
		},
		{
			name:     "checksum absent",
			frame:    "[CPV]",
			wantCode: CodeMissingChecksum,
		},
		{
			name:     "non-hex trailing bytes count as absent",
			frame:    "[CPV]zzzz",
			wantCode: CodeMissingChecksum,
		},
		{
			name:     "computed zero with absent field is not missing",
			frame:    "[EJGG]",
			wantName: "EJGG",
			wantCRC:  0x0000,
		},
		{
			name:     "computed zero with explicit zero field",
			frame:    "[EJGG]0",
			wantName: "EJGG",
			wantCRC:  0x0000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var pkt Packet
			consumed, err := codec.Decode([]byte(tt.frame), &pkt)

			if tt.wantCode != CodeSuccess {
				if err == nil {
					t.Fatalf("Decode() expected error %v, got nil", tt.wantCode)
				}
				if CodeOf(err) != tt.wantCode {
					t.Fatalf("Decode() code = %v, want %v", CodeOf(err), tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if consumed != len(tt.frame) {
				t.Errorf("Decode() consumed = %d, want %d", consumed, len(tt.frame))
			}
			if pkt.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", pkt.Name(), tt.wantName)
			}
			if pkt.ParamCount() != len(tt.wantParams) {
				t.Errorf("ParamCount() = %d, want %d", pkt.ParamCount(), len(tt.wantParams))
			}
			for i, want := range tt.wantParams {
				if got := pkt.Param(i); got != want {
					t.Errorf("Param(%d) = %q, want %q", i, got, want)
				}
			}
			if pkt.Checksum() != tt.wantCRC {
				t.Errorf("Checksum() = 0x%04X, want 0x%04X", pkt.Checksum(), tt.wantCRC)
			}
		})
	}
}

func TestDecodeParamCountCap(t *testing.T) {
	// A fifth parameter never lands in the packet; parsing stops at the cap.
	codec := NewCodec(WithoutChecksum())

	var pkt Packet
	consumed, err := codec.Decode([]byte("[CMD:a:b:c:d:e]"), &pkt)
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if pkt.ParamCount() != MaxParamCount {
		t.Fatalf("ParamCount() = %d, want %d", pkt.ParamCount(), MaxParamCount)
	}
	for i, want := range []string{"a", "b", "c", "d"} {
		if got := pkt.Param(i); got != want {
			t.Errorf("Param(%d) = %q, want %q", i, got, want)
		}
	}
	if consumed >= len("[CMD:a:b:c:d:e]") {
		t.Errorf("Decode() consumed = %d, want fewer than the full frame", consumed)
	}
}

func TestDecodeRecoversNameOnError(t *testing.T) {
	// The caller addresses its error response with whatever name was
	// recovered before the failure.
	codec := NewCodec()

	var pkt Packet
	_, err := codec.Decode([]byte("[CPV]FFFF"), &pkt)
	if CodeOf(err) != CodeChecksumMismatch {
		t.Fatalf("Decode() code = %v, want %v", CodeOf(err), CodeChecksumMismatch)
	}
	if pkt.Name() != "CPV" {
		t.Errorf("Name() = %q, want %q", pkt.Name(), "CPV")
	}
}

func TestDecodeClearsPreviousState(t *testing.T) {
	codec := NewCodec(WithoutChecksum())

	var pkt Packet
	if _, err := codec.Decode([]byte("[CSC:AF5B07:1]"), &pkt); err != nil {
		t.Fatal(err)
	}
	if _, err := codec.Decode([]byte("[CSE]"), &pkt); err != nil {
		t.Fatal(err)
	}

	if pkt.Name() != "CSE" {
		t.Errorf("Name() = %q, want %q", pkt.Name(), "CSE")
	}
	if pkt.ParamCount() != 0 {
		t.Errorf("ParamCount() = %d, want 0", pkt.ParamCount())
	}
}

func BenchmarkDecode(b *testing.B) {
	codec := NewCodec()
	frame := []byte("[CSB:FF]3447")
	var pkt Packet

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := codec.Decode(frame, &pkt); err != nil {
			b.Fatal(err)
		}
	}
}
