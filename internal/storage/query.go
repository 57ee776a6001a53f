package storage

// recentRunsQuery joins jobs, schedules and history for the last one to two
// days. run_date and run_time are stored by msdb as yyyymmdd and hhmmss integers.
const recentRunsQuery = `
SELECT
    j.name AS job_name,
    CONVERT(VARCHAR(10), CAST(CAST(h.run_date AS VARCHAR(8)) AS DATE), 103) AS run_date_formatted,
    STUFF(STUFF(RIGHT('000000' + CAST(h.run_time AS VARCHAR(6)), 6), 3, 0, ':'), 6, 0, ':') AS run_time_formatted,
    STUFF(STUFF(RIGHT('000000' + CAST(h.run_duration AS VARCHAR(6)), 6), 3, 0, ':'), 6, 0, ':') AS run_duration_formatted,
    h.run_status AS run_status,
    CASE WHEN js.next_run_date > 0
        THEN CONVERT(VARCHAR(10), CAST(CAST(js.next_run_date AS VARCHAR(8)) AS DATE), 103)
    END AS next_run_date_formatted,
    CASE WHEN js.next_run_date > 0
        THEN STUFF(STUFF(RIGHT('000000' + CAST(js.next_run_time AS VARCHAR(6)), 6), 3, 0, ':'), 6, 0, ':')
    END AS next_run_time_formatted
FROM msdb.dbo.sysjobs j
    LEFT JOIN msdb.dbo.sysjobschedules js ON j.job_id = js.job_id
    LEFT JOIN msdb.dbo.sysschedules s ON js.schedule_id = s.schedule_id
    LEFT JOIN msdb.dbo.sysjobhistory h ON j.job_id = h.job_id
WHERE s.freq_subday_type = @subday_type
    AND h.run_status IS NOT NULL
    AND (
        (h.run_date > CAST(@since_two_days AS INT) AND h.run_time > CAST(@now_time AS INT))
        OR h.run_date > CAST(@since_one_day AS INT)
    )
ORDER BY s.schedule_id DESC, h.run_date DESC, h.run_time DESC`
