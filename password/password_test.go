package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("userOnePass")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "userOnePass" {
		t.Fatal("hash must not equal the plain password")
	}

	if !Verify(hash, "userOnePass") {
		t.Error("correct password should verify")
	}
	if Verify(hash, "userOnePass1") {
		t.Error("wrong password should not verify")
	}
	if Verify("not-a-hash", "userOnePass") {
		t.Error("garbage hash should not verify")
	}
}

func TestHashesAreSalted(t *testing.T) {
	first, err := Hash("userOnePass")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Hash("userOnePass")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ")
	}
}
