package server

import (
	"net/http"

	"github.com/sig-0/penrates/rates"
)

type (
	snapshotDelegate    func() []*rates.Sample
	lenDelegate         func() int
	handlerDelegate     func() http.HandlerFunc
	clientCountDelegate func() int
)

type mockHistory struct {
	snapshotFn snapshotDelegate
	lenFn      lenDelegate
}

func (m *mockHistory) Snapshot() []*rates.Sample {
	if m.snapshotFn != nil {
		return m.snapshotFn()
	}

	return nil
}

func (m *mockHistory) Len() int {
	if m.lenFn != nil {
		return m.lenFn()
	}

	return 0
}

type mockStreamer struct {
	handlerFn     handlerDelegate
	clientCountFn clientCountDelegate
}

func (m *mockStreamer) Handler() http.HandlerFunc {
	if m.handlerFn != nil {
		return m.handlerFn()
	}

	return func(_ http.ResponseWriter, _ *http.Request) {}
}

func (m *mockStreamer) ClientCount() int {
	if m.clientCountFn != nil {
		return m.clientCountFn()
	}

	return 0
}
