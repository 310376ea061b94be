package embedder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeVocab writes a minimal WordPiece vocab file and returns its path.
// Token IDs are line numbers, so [PAD] is 0 as the real models expect.
func writeVocab(t *testing.T, extra ...string) string {
	t.Helper()
	tokens := append([]string{"[PAD]", "[UNK]", "[CLS]", "[SEP]"}, extra...)
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(path, []byte(strings.Join(tokens, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write vocab: %v", err)
	}
	return path
}

func newTestTokenizer(t *testing.T, extra ...string) *tokenizer {
	t.Helper()
	tok, err := newTokenizer(writeVocab(t, extra...))
	if err != nil {
		t.Fatalf("newTokenizer() error: %v", err)
	}
	return tok
}

func TestTokenizeKnownWords(t *testing.T) {
	tok := newTestTokenizer(t, "upi", "fraud", "##ster")

	ids, mask := tok.tokenize("UPI fraud")

	// [CLS] upi fraud [SEP] then padding.
	want := []int64{2, 4, 5, 3}
	for i, w := range want {
		if ids[i] != w {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], w)
		}
		if mask[i] != 1 {
			t.Errorf("mask[%d] = %d, want 1", i, mask[i])
		}
	}
	if mask[4] != 0 || ids[4] != 0 {
		t.Errorf("expected padding after [SEP], got id=%d mask=%d", ids[4], mask[4])
	}
}

func TestTokenizeWordPieceSubwords(t *testing.T) {
	tok := newTestTokenizer(t, "fraud", "##ster")

	ids, _ := tok.tokenize("fraudster")

	// fraudster → fraud + ##ster
	want := []int64{2, 4, 5, 3}
	for i, w := range want {
		if ids[i] != w {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], w)
		}
	}
}

func TestTokenizeUnknownWord(t *testing.T) {
	tok := newTestTokenizer(t, "fraud")

	ids, _ := tok.tokenize("zzzzqqq")

	if ids[1] != 1 { // [UNK]
		t.Errorf("ids[1] = %d, want [UNK] id 1", ids[1])
	}
}

func TestTokenizeEmptyString(t *testing.T) {
	tok := newTestTokenizer(t)

	ids, mask := tok.tokenize("")

	// Just [CLS] [SEP].
	if ids[0] != 2 || ids[1] != 3 {
		t.Errorf("expected [CLS][SEP], got %v", ids[:2])
	}
	if mask[0] != 1 || mask[1] != 1 || mask[2] != 0 {
		t.Errorf("unexpected mask %v", mask[:3])
	}
}

func TestTokenizeLowercasesAndSplitsPunctuation(t *testing.T) {
	tok := newTestTokenizer(t, "rs", ".", "15000", "lost")

	ids, _ := tok.tokenize("Lost Rs.15000")

	want := []int64{2, 7, 4, 5, 6, 3} // [CLS] lost rs . 15000 [SEP]
	for i, w := range want {
		if ids[i] != w {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], w)
		}
	}
}

func TestTokenizeStripsAccents(t *testing.T) {
	tok := newTestTokenizer(t, "cafe")

	ids, _ := tok.tokenize("café")

	if ids[1] != 4 {
		t.Errorf("ids[1] = %d, want 4 (accent-stripped 'cafe')", ids[1])
	}
}

func TestTokenizeBatchPadsToLongest(t *testing.T) {
	tok := newTestTokenizer(t, "upi", "fraud", "call")

	batch := tok.tokenizeBatch([]string{"upi", "upi fraud call"})

	if batch.batchSize != 2 {
		t.Fatalf("batchSize = %d, want 2", batch.batchSize)
	}
	// Longest sequence: [CLS] upi fraud call [SEP] = 5 tokens.
	if batch.seqLen != 5 {
		t.Fatalf("seqLen = %d, want 5", batch.seqLen)
	}
	if got := len(batch.inputIDs); got != 10 {
		t.Fatalf("len(inputIDs) = %d, want 10", got)
	}
	// First sequence: 3 real tokens then padding.
	wantMask := []int64{1, 1, 1, 0, 0, 1, 1, 1, 1, 1}
	for i, w := range wantMask {
		if batch.attentionMask[i] != w {
			t.Errorf("attentionMask[%d] = %d, want %d", i, batch.attentionMask[i], w)
		}
	}
}

func TestTokenizeBatchEmpty(t *testing.T) {
	tok := newTestTokenizer(t)

	batch := tok.tokenizeBatch(nil)
	if batch.batchSize != 0 || len(batch.inputIDs) != 0 {
		t.Errorf("expected empty batch, got %+v", batch)
	}
}

func TestTruncationAtMaxSeqLen(t *testing.T) {
	tok := newTestTokenizer(t, "word")

	long := strings.Repeat("word ", maxSeqLen*2)
	ids, mask := tok.tokenize(long)

	if len(ids) != maxSeqLen {
		t.Fatalf("len(ids) = %d, want %d", len(ids), maxSeqLen)
	}
	if ids[maxSeqLen-1] != 3 { // [SEP] must close the truncated sequence
		t.Errorf("ids[last] = %d, want [SEP] id 3", ids[maxSeqLen-1])
	}
	for i := 0; i < maxSeqLen; i++ {
		if mask[i] != 1 {
			t.Errorf("mask[%d] = %d, want 1 on fully-packed sequence", i, mask[i])
		}
	}
}
