package checker_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/a11ykit/achecker-client/internal/achecker"
	"github.com/a11ykit/achecker-client/internal/checker"
	"github.com/a11ykit/achecker-client/internal/config"
	"github.com/a11ykit/achecker-client/internal/messages"
	"github.com/a11ykit/achecker-client/internal/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const twoFindings = `<?xml version="1.0" encoding="UTF-8"?>
<resultset>
  <summary><status>FAIL</status></summary>
  <results>
    <result>
      <resultType>Error</resultType>
      <lineNum>3</lineNum><columnNum>1</columnNum>
      <errorMsg>Document has no title element.</errorMsg>
      <repair>Add a title.</repair>
    </result>
    <result>
      <resultType>Potential Problem</resultType>
      <lineNum>9</lineNum><columnNum>4</columnNum>
      <errorMsg>i (italic) element used.</errorMsg>
      <errorSourceCode>i</errorSourceCode>
    </result>
  </results>
</resultset>`

type CheckerSuite struct {
	suite.Suite

	fetcher *mocks.Fetcher
	checker *checker.Checker
}

func (s *CheckerSuite) SetupTest() {
	s.fetcher = mocks.NewFetcher(s.T())
	s.checker = checker.New(s.fetcher, messages.Default(), nil)
}

func (s *CheckerSuite) TestValidationFailuresSkipFetch() {
	cases := []struct {
		opts checker.Options
		want error
	}{
		{checker.Options{ID: "id"}, checker.ErrMissingURI},
		{checker.Options{URI: "example.com", ID: "id"}, checker.ErrInvalidURI},
		{checker.Options{URI: "http://example.com"}, checker.ErrMissingCredential},
	}

	for _, tc := range cases {
		_, err := s.checker.Validate(context.Background(), tc.opts)
		s.ErrorIs(err, tc.want)
		s.True(checker.IsInputError(err))
	}

	s.fetcher.AssertNotCalled(s.T(), "Fetch", mock.Anything, mock.Anything)
}

func (s *CheckerSuite) TestNormalizesRequest() {
	s.fetcher.
		EXPECT().
		Fetch(mock.Anything, achecker.Request{
			URI:   "http://example.com/",
			ID:    "abc",
			Guide: "WCAG2-AA",
		}).
		Return(twoFindings, nil).
		Once()

	rep, err := s.checker.Validate(context.Background(), checker.Options{
		URI: "http://example.com/",
		ID:  "abc",
	})

	s.Require().NoError(err)
	s.Equal("FAIL", rep.Status)
	s.Require().Len(rep.Errors, 1)
	s.Equal("The page has no title element.", rep.Errors[0].Message)
	s.Equal("Add a title.", rep.Errors[0].Solution)
	s.Require().Len(rep.PotentialProblems, 1)
	s.Equal("Use em or CSS instead of the i element.", rep.PotentialProblems[0].Message)
	s.Equal("i", rep.PotentialProblems[0].Source)
}

func (s *CheckerSuite) TestKeepsRequestedGuide() {
	s.fetcher.
		EXPECT().
		Fetch(mock.Anything, mock.MatchedBy(func(r achecker.Request) bool {
			return r.Guide == "508"
		})).
		Return(twoFindings, nil)

	_, err := s.checker.Validate(context.Background(), checker.Options{
		URI:   "https://example.com",
		ID:    "abc",
		Guide: "508",
	})

	s.NoError(err)
}

func (s *CheckerSuite) TestFetchError() {
	cause := errors.New("connection refused")
	s.fetcher.EXPECT().Fetch(mock.Anything, mock.Anything).Return("", cause)

	rep, err := s.checker.Validate(context.Background(), checker.Options{URI: "http://example.com", ID: "x"})

	var ferr *checker.FetchError
	s.Require().True(errors.As(err, &ferr))
	s.ErrorIs(err, cause)
	s.Empty(rep.Status)
	s.Nil(rep.Errors)
}

func (s *CheckerSuite) TestInvalidCredentialMarker() {
	s.fetcher.
		EXPECT().
		Fetch(mock.Anything, mock.Anything).
		Return("<html><body>Invalid web service ID. Please check.</body></html>", nil)

	_, err := s.checker.Validate(context.Background(), checker.Options{URI: "http://example.com", ID: "bad"})

	s.ErrorIs(err, checker.ErrInvalidCredential)
	s.False(checker.IsInputError(err))

	var perr *checker.ParseError
	s.False(errors.As(err, &perr))
}

func (s *CheckerSuite) TestInvalidCredentialMarkerOnErrorStatus() {
	s.fetcher.
		EXPECT().
		Fetch(mock.Anything, mock.Anything).
		Return("", &achecker.StatusError{StatusCode: 403, Body: "Invalid web service ID"})

	_, err := s.checker.Validate(context.Background(), checker.Options{URI: "http://example.com", ID: "bad"})

	s.ErrorIs(err, checker.ErrInvalidCredential)

	var ferr *checker.FetchError
	s.False(errors.As(err, &ferr))
}

func (s *CheckerSuite) TestInvalidCredentialFlagOnTruncatedBody() {
	s.fetcher.
		EXPECT().
		Fetch(mock.Anything, mock.Anything).
		Return("", &achecker.StatusError{StatusCode: 403, Body: "<html>", InvalidCredential: true})

	_, err := s.checker.Validate(context.Background(), checker.Options{URI: "http://example.com", ID: "bad"})

	s.ErrorIs(err, checker.ErrInvalidCredential)
}

func (s *CheckerSuite) TestParseError() {
	s.fetcher.EXPECT().Fetch(mock.Anything, mock.Anything).Return("<resultset><summary>", nil)

	_, err := s.checker.Validate(context.Background(), checker.Options{URI: "http://example.com", ID: "x"})

	var perr *checker.ParseError
	s.True(errors.As(err, &perr))
}

func TestCheckerSuite(t *testing.T) {
	suite.Run(t, new(CheckerSuite))
}

func TestRejectedCredentialsKeepServiceAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") != "good" {
			http.Error(w, "Invalid web service ID", http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte(twoFindings))
	}))
	defer srv.Close()

	cfg := config.Defaults()
	cfg.Endpoint = srv.URL
	cfg.Timeout = time.Second
	cfg.RetryWait = time.Millisecond

	c := checker.New(achecker.NewFetcher(cfg, nil), messages.Default(), nil)

	for i := 0; i < 10; i++ {
		_, err := c.Validate(context.Background(), checker.Options{URI: "http://example.com", ID: "bad"})
		require.ErrorIs(t, err, checker.ErrInvalidCredential)

		var ferr *checker.FetchError
		require.False(t, errors.As(err, &ferr))
	}

	rep, err := c.Validate(context.Background(), checker.Options{URI: "http://example.com", ID: "good"})

	require.NoError(t, err)
	require.Equal(t, "FAIL", rep.Status)
	require.Len(t, rep.Errors, 1)
}
