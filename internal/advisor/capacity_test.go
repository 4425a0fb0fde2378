package advisor

import "testing"

func TestStorageCapacity(t *testing.T) {
	tests := []struct {
		name   string
		wantGB int
		wantOK bool
	}{
		{"Samsung 970 EVO 500GB", 500, true},
		{"Samsung 970 EVO 500 GB", 500, true},
		{"WD Black 1TB", 1024, true},
		{"Seagate Barracuda 2 TB", 2048, true},
		{"Crucial MX500 250GB SATA", 250, true},
		{"Kingston A400 120gb", 120, true},
		{"PNY CS900 960GB", 960, true},
		{"Generic NVMe Drive", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gb, ok := StorageCapacity(tt.name)
			if ok != tt.wantOK || gb != tt.wantGB {
				t.Errorf("StorageCapacity(%q) = (%d, %v), want (%d, %v)",
					tt.name, gb, ok, tt.wantGB, tt.wantOK)
			}
		})
	}
}
