package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "session",
			objectType:  "state",
			identifier:  "01HGZ8VNRYXS8QKNJV5GRWPWDQ",
			paramsKey:   nil,
			expectedKey: "triviaorb:session:state:01HGZ8VNRYXS8QKNJV5GRWPWDQ",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "session",
			objectType:  "state",
			identifier:  "abc",
			paramsKey:   []string{},
			expectedKey: "triviaorb:session:state:abc",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "topics",
			objectType:  "batch",
			identifier:  "xyz",
			paramsKey:   []string{"param1", "param2"},
			expectedKey: "triviaorb:topics:batch:xyz:param1_param2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}

func TestSessionKey(t *testing.T) {
	if got := SessionKey("s1"); got != "triviaorb:session:state:s1" {
		t.Errorf("SessionKey() = %v", got)
	}
}
