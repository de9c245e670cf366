//nolint:revive // types is a standard Go package name pattern
package types

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRequest_Variants(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Request
	}{
		{
			name: "resume",
			body: `{"type":"resume","payload":{"resume":"my resume","jobDescription":"the job"}}`,
			want: &ResumeRequest{Resume: "my resume", JobDescription: "the job"},
		},
		{
			name: "search",
			body: `{"type":"search","payload":{"query":"frontend jobs in New York"}}`,
			want: &SearchRequest{Query: "frontend jobs in New York"},
		},
		{
			name: "application",
			body: `{"type":"application","payload":{"jobId":"4","name":"Ada","email":"ada@example.com","resume":"text"}}`,
			want: &Application{JobID: "4", Name: "Ada", Email: "ada@example.com", Resume: "text"},
		},
		{
			name: "job submission",
			body: `{"type":"job-submission","payload":{"jobTitle":"SRE","companyName":"Acme","location":"Remote","jobType":"Contract","salaryRange":"$1","jobDescription":"d","responsibilities":"a\nb","qualifications":"c","contactEmail":"hr@acme.io"}}`,
			want: &JobSubmission{
				JobTitle: "SRE", CompanyName: "Acme", Location: "Remote", JobType: JobTypeContract,
				SalaryRange: "$1", JobDescription: "d", Responsibilities: "a\nb", Qualifications: "c",
				ContactEmail: "hr@acme.io",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeRequest([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestDecodeRequest_UnknownType(t *testing.T) {
	_, err := DecodeRequest([]byte(`{"type":"bogus","payload":{}}`))
	require.Error(t, err)

	var typeErr *UnknownRequestTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, RequestType("bogus"), typeErr.Type)
	assert.Contains(t, err.Error(), "bogus")
}

func TestDecodeRequest_MalformedEnvelope(t *testing.T) {
	_, err := DecodeRequest([]byte(`{not json`))
	require.Error(t, err)

	var typeErr *UnknownRequestTypeError
	var payloadErr *InvalidPayloadError
	assert.False(t, errors.As(err, &typeErr))
	assert.False(t, errors.As(err, &payloadErr))
	assert.Contains(t, err.Error(), "failed to parse request envelope")
}

func TestDecodeRequest_PayloadMismatch(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing payload", `{"type":"resume"}`},
		{"null payload", `{"type":"search","payload":null}`},
		{"payload is a string", `{"type":"search","payload":"jobs"}`},
		{"wrong field type", `{"type":"resume","payload":{"resume":5,"jobDescription":"x"}}`},
		{"missing required field", `{"type":"resume","payload":{"resume":"only resume"}}`},
		{"search payload on resume tag", `{"type":"resume","payload":{"query":"jobs"}}`},
		{"foreign field on resume", `{"type":"resume","payload":{"resume":"r","jobDescription":"j","query":"x"}}`},
		{"foreign field on search", `{"type":"search","payload":{"query":"jobs","location":"Austin"}}`},
		{"foreign field on application", `{"type":"application","payload":{"jobId":"1","name":"A","email":"a@b.co","resume":"r","contactEmail":"hr@acme.io"}}`},
		{"foreign field on job-submission", `{"type":"job-submission","payload":{"jobTitle":"SRE","companyName":"Acme","location":"Remote","jobType":"Contract","salaryRange":"$1","jobDescription":"d","responsibilities":"a","qualifications":"c","contactEmail":"hr@acme.io","jobId":"1"}}`},
		{"bad email", `{"type":"application","payload":{"jobId":"1","name":"A","email":"nope","resume":"r"}}`},
		{"bad job type", `{"type":"job-submission","payload":{"jobTitle":"SRE","companyName":"Acme","location":"Remote","jobType":"Seasonal","salaryRange":"$1","jobDescription":"d","responsibilities":"a","qualifications":"c","contactEmail":"hr@acme.io"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRequest([]byte(tt.body))
			require.Error(t, err)

			var payloadErr *InvalidPayloadError
			assert.ErrorAs(t, err, &payloadErr)
		})
	}
}

func TestEncodeRequest_RoundTripsThroughDecode(t *testing.T) {
	data, err := EncodeRequest(&SearchRequest{Query: "remote data jobs"})
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, TypeSearch, env.Type)
	assert.JSONEq(t, `{"query":"remote data jobs"}`, string(env.Payload))
}

type recordingDispatcher struct {
	called RequestType
}

func (d *recordingDispatcher) Resume(context.Context, *ResumeRequest) (*FeedbackResponse, error) {
	d.called = TypeResume
	return &FeedbackResponse{Feedback: "ok"}, nil
}

func (d *recordingDispatcher) Search(context.Context, *SearchRequest) (*SearchResponse, error) {
	d.called = TypeSearch
	return &SearchResponse{ParsedQuery: &ParsedQuery{}}, nil
}

func (d *recordingDispatcher) Application(context.Context, *Application) (*SubmissionAck, error) {
	d.called = TypeApplication
	return &SubmissionAck{Success: true}, nil
}

func (d *recordingDispatcher) JobSubmission(context.Context, *JobSubmission) (*SubmissionAck, error) {
	d.called = TypeJobSubmission
	return &SubmissionAck{Success: true}, nil
}

func TestDispatch_RoutesToMatchingMethod(t *testing.T) {
	for _, rt := range []RequestType{TypeResume, TypeSearch, TypeApplication, TypeJobSubmission} {
		req, err := NewRequest(rt)
		require.NoError(t, err)

		d := &recordingDispatcher{}
		_, err = req.Dispatch(context.Background(), d)
		require.NoError(t, err)
		assert.Equal(t, rt, d.called)
		assert.Equal(t, rt, req.Type())
	}
}

func TestJobType_Valid(t *testing.T) {
	assert.True(t, JobTypeFullTime.Valid())
	assert.True(t, JobTypePartTime.Valid())
	assert.True(t, JobTypeContract.Valid())
	assert.False(t, JobTypeAny.Valid())
	assert.False(t, JobType("full-time").Valid())
}
