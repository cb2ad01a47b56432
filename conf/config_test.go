package conf

import (
	"os"
	"testing"
)

func TestGetEnv(t *testing.T) {
	type args struct {
		key   string
		value string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"Single value",
			args{"TEST_EDI_HELLO", "world"},
			"world",
		},
		{
			"Multi-value separated by commas",
			args{"TEST_EDI_LIST", "One,Two,Three,Four"},
			"One,Two,Three,Four",
		},
		{
			"Number",
			args{"TEST_EDI_NUM", "1234"},
			"1234",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := SetEnv(t, tt.args.key, tt.args.value); err != nil {
				t.Errorf("SetEnv() error = %v", err)
			}
			if got := GetEnv(tt.args.key); got != tt.want {
				t.Errorf("GetEnv() = %v, want %v", got, tt.want)
			}
			var _ = UnsetEnv(t, tt.args.key)
		})
	}
}

func TestGetEnvMissing(t *testing.T) {
	if got := GetEnv("TEST_EDI_DOESNOTEXIST"); got != "" {
		t.Errorf("GetEnv() = %v, want empty string", got)
	}
}

func TestSetEnv(t *testing.T) {
	type args struct {
		protect *testing.T
		key     string
		value   string
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			"Change Value",
			args{t, "TEST_EDI_SOMEPATH", "../somepath"},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := SetEnv(tt.args.protect, tt.args.key, tt.args.value); (err != nil) != tt.wantErr {
				t.Errorf("SetEnv() error = %v, wantErr %v", err, tt.wantErr)
			}
			if val := GetEnv(tt.args.key); val != tt.args.value {
				t.Errorf("New value entered (%v) into conf does not match value provided.", tt.args.value)
			}
			var _ = UnsetEnv(tt.args.protect, tt.args.key)
		})
	}
}

func TestUnsetEnv(t *testing.T) {
	type args struct {
		protect *testing.T
		key     string
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			"Remove Value",
			args{t, "TEST_EDI_HELLO"},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var _ = SetEnv(tt.args.protect, tt.args.key, "world")
			if err := UnsetEnv(tt.args.protect, tt.args.key); (err != nil) != tt.wantErr {
				t.Errorf("UnsetEnv() error = %v, wantErr %v, %v", err, tt.wantErr, state)
			}
			if val := GetEnv(tt.args.key); val != "" {
				t.Errorf("UnsetEnv did not clear the key from conf. Value is %v", val)
			}
			if val := os.Getenv(tt.args.key); val != "" {
				t.Errorf("UnsetEnv did not clear the key from EV. Value is %v", val)
			}
		})
	}
}

func TestLookupEnv(t *testing.T) {
	type args struct {
		key string
	}
	tests := []struct {
		name  string
		args  args
		want  string
		want1 bool
	}{
		{
			"Query a variable that does not exist",
			args{"TEST_EDI_DOESNOTEXIST"},
			"",
			false,
		},
		{
			"Query a variable that exists but was unset",
			args{"TEST_EDI_CHANGE"},
			"",
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			if tt.args.key == "TEST_EDI_CHANGE" {
				var _ = SetEnv(t, tt.args.key, "value")
				var _ = UnsetEnv(t, tt.args.key)
			}

			got, got1 := LookupEnv(tt.args.key)
			if got != tt.want {
				t.Errorf("LookupEnv() got = %v, want %v", got, tt.want)
			}
			if got1 != tt.want1 {
				t.Errorf("LookupEnv() got1 = %v, want %v", got1, tt.want1)
			}
		})
	}
}
