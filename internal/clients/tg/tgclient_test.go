package tg

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "123:abc"

func newFakeBotAPI(t *testing.T, sendMessage http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			_, _ = io.WriteString(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"expense","username":"expense_bot"}}`)
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			sendMessage(w, r)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func Test_OnHangingSendMessage_ShouldGiveUpAfterTimeout(t *testing.T) {
	srv := newFakeBotAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	})
	client, err := newWithEndpoint(testToken, srv.URL+"/bot%s/%s", 200*time.Millisecond)
	require.NoError(t, err)

	start := time.Now()
	err = client.SendMessage("✅ Dicatat: kopi = Rp 15,000 (kategori: makanan)", 42)

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func Test_OnSendMessage_ShouldPostTextToChat(t *testing.T) {
	var form string
	srv := newFakeBotAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm.Get("chat_id") + "|" + r.PostForm.Get("text")
		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"},"text":"ok"}}`)
	})
	client, err := newWithEndpoint(testToken, srv.URL+"/bot%s/%s", time.Second)
	require.NoError(t, err)

	require.NoError(t, client.SendMessage("📈 Total pengeluaran bulan ini: Rp 0", 42))
	assert.Equal(t, "42|📈 Total pengeluaran bulan ini: Rp 0", form)
}

func Test_OnLongPoll_ShouldStayWithinHTTPTimeout(t *testing.T) {
	assert.Equal(t, 4, longPollSeconds(5*time.Second))
	assert.Equal(t, 0, longPollSeconds(500*time.Millisecond))
	assert.Equal(t, pollTimeoutSeconds, longPollSeconds(10*time.Minute))
}
